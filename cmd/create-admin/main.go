// Command create-admin interactively creates an admin account.
package main

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/utilities"
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {

	fmt.Println("Generating admin account")

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Enter password: ")
	password1, _ := reader.ReadString('\n')
	password1 = strings.TrimSpace(password1)

	fmt.Print("Confirm password: ")
	password2, _ := reader.ReadString('\n')
	password2 = strings.TrimSpace(password2)

	if password1 == password2 {
		fmt.Printf("Username: %s\nPassword confirmed.\n", username)
	} else {
		fmt.Println("Passwords do not match.")
		os.Exit(0)
	}

	db, err := database.GetMainDB()
	if err != nil {
		fmt.Printf("Failed to initialize database: %s\n", err)
		os.Exit(1)
	}

	utilities.CreateAdmin(password1, username, db.DB)

	fmt.Println("Admin account created")
}
