// Package cli implements the loginkit command line tool.
//
// The tool runs the signup or login validation once against values given as
// flags or read from a YAML or JSON file, and prints a report:
//
//	loginkit signup --name "Jane Doe" --email jane@example.com \
//	  --password password1 --repeat-password password1
//
//	loginkit login --input login.yaml --format json --lang es
//
// Flags override values from the input file. Input file keys are the field
// ids (name, email, username, phone, password, repeat_password).
//
// Rule configuration is read from LOGINKIT_* environment variables and an
// optional .env file. A failed validation makes the command return
// ErrInvalidInput after the report has been written.
package cli
