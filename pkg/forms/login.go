package forms

import (
	"context"
	"log/slog"

	"github.com/tangfuhao/loginkit/pkg/catalog"
	"github.com/tangfuhao/loginkit/pkg/form"
	"github.com/tangfuhao/loginkit/pkg/sanitizer"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// LoginRequest carries the normalized input of a valid login form.
type LoginRequest struct {
	Account  string `json:"account" yaml:"account"`
	Password string `json:"-" yaml:"-"`
}

// LogValue masks the account and omits the password.
func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("account", maskAccount(r.Account)))
}

// Login is the validation glue of the login screen: the account field of the
// catalog's variant and a password.
type Login struct {
	*screen
	cat *catalog.Catalog
}

func NewLogin(cat *catalog.Catalog, opts ...form.Option) (*Login, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	l := &Login{screen: newScreen(opts...), cat: cat}
	_, account := l.add(cat.AccountField(), cat.AccountRules())
	_, password := l.add(FieldPassword, cat.PasswordRules())

	if err := l.coordinator.Setup(account, password); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Login) Submit(ctx context.Context, onSuccess func(LoginRequest)) (validator.Outcome, error) {
	return l.submit(ctx, func(context.Context) {
		if onSuccess != nil {
			onSuccess(l.Request())
		}
	})
}

func (l *Login) Request() LoginRequest {
	account := l.text(l.cat.AccountField())
	if l.cat.Variant() == catalog.VariantEmail {
		account = sanitizer.Email(account)
	} else {
		account = sanitizer.UserName(account)
	}
	return LoginRequest{Account: account, Password: l.text(FieldPassword)}
}
