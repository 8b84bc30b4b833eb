package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tangfuhao/loginkit/pkg/forms"
)

var signupFields = []string{
	forms.FieldName,
	forms.FieldEmail,
	forms.FieldUserName,
	forms.FieldPhone,
	forms.FieldPassword,
	forms.FieldRepeatPassword,
}

// signupPayload is the report view of a valid signup.
type signupPayload struct {
	forms.SignupRequest `yaml:",inline"`
	PasswordHash        string `json:"password_hash,omitempty" yaml:"password_hash,omitempty"`
}

func signupCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Validate signup input",
		Description: `Runs the signup form validation once and prints a report.

The email variant collects name, email, password and repeat password. The
username_phone variant (LOGINKIT_VARIANT=username_phone) collects username
and phone instead of email.

# Examples

  loginkit signup --name "Jane Doe" --email jane@example.com \
    --password password1 --repeat-password password1

  loginkit signup --input signup.yaml --hash-cost 10 --format json`,
		Flags: append(commonFlags(),
			&cli.StringFlag{Name: "name", Usage: "Full name (first and last)"},
			&cli.StringFlag{Name: "phone", Usage: "Phone number (username_phone variant)"},
			&cli.StringFlag{Name: "repeat-password", Usage: "Password confirmation"},
			&cli.IntFlag{Name: "hash-cost", Usage: "Include a bcrypt hash of the password with this cost (0 disables)"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(ctx, cmd, o, signupFields)
			if err != nil {
				return err
			}

			signup, err := forms.NewSignup(s.cat, s.formOptions()...)
			if err != nil {
				return err
			}

			messages := map[string]string{}
			if err := s.fill(signup, signupFields, messages); err != nil {
				return err
			}

			var request *signupPayload
			outcome, err := signup.Submit(ctx, func(req forms.SignupRequest) {
				request = &signupPayload{SignupRequest: req}
			})
			missing, err := missingInput(err)
			if err != nil {
				return err
			}

			r := s.report(cmd.Name, signup, outcome, missing, messages)
			if request != nil {
				if cost := int(cmd.Int("hash-cost")); cost > 0 {
					hash, err := request.SignupRequest.PasswordHash(cost)
					if err != nil {
						return err
					}
					request.PasswordHash = string(hash)
				}
				r.Request = request
				s.log.InfoContext(ctx, "signup accepted", "request", request.SignupRequest)
			}
			return s.finish(ctx, cmd, r)
		},
	}
}
