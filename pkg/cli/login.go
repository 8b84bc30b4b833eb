package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tangfuhao/loginkit/pkg/forms"
)

var loginFields = []string{
	forms.FieldEmail,
	forms.FieldUserName,
	forms.FieldPassword,
}

func loginCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Validate login input",
		Description: `Runs the login form validation once and prints a report.

# Examples

  loginkit login --email jane@example.com --password password1
  LOGINKIT_VARIANT=username_phone loginkit login --username jane_doe --password password1`,
		Flags: commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(ctx, cmd, o, loginFields)
			if err != nil {
				return err
			}

			login, err := forms.NewLogin(s.cat, s.formOptions()...)
			if err != nil {
				return err
			}

			messages := map[string]string{}
			if err := s.fill(login, loginFields, messages); err != nil {
				return err
			}

			var request *forms.LoginRequest
			outcome, err := login.Submit(ctx, func(req forms.LoginRequest) {
				request = &req
			})
			missing, err := missingInput(err)
			if err != nil {
				return err
			}

			r := s.report(cmd.Name, login, outcome, missing, messages)
			if request != nil {
				r.Request = request
				s.log.InfoContext(ctx, "login accepted", "request", *request)
			}
			return s.finish(ctx, cmd, r)
		},
	}
}
