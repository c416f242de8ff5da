// Command hashpassword prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/harentsoaR/medicare-api/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
