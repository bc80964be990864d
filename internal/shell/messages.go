package shell

import "fmt"

// Fixed user-facing messages.
const (
	MsgInvalidInput    = "Invalid input"
	MsgOperationFailed = "Operation failed"
)

func welcomeMessage(name string) string {
	return fmt.Sprintf("Welcome to the File Manager, %s!", name)
}

func goodbyeMessage(name string) string {
	return fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", name)
}

func cwdMessage(dir string) string {
	return fmt.Sprintf("You are currently in %s", dir)
}
