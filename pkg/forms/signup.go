package forms

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/tangfuhao/loginkit/pkg/catalog"
	"github.com/tangfuhao/loginkit/pkg/form"
	"github.com/tangfuhao/loginkit/pkg/phone"
	"github.com/tangfuhao/loginkit/pkg/sanitizer"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// SignupRequest carries the normalized input of a valid signup form.
// UserName holds the email address for the email variant. Phone is in E.164
// form and empty for the email variant.
type SignupRequest struct {
	UserName string `json:"username" yaml:"username"`
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Password string `json:"-" yaml:"-"`
}

// PasswordHash hashes the password with bcrypt. A cost of 0 selects
// bcrypt.DefaultCost.
func (r SignupRequest) PasswordHash(cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), cost)
	if err != nil {
		return nil, errors.Join(ErrHashingPassword, err)
	}
	return hash, nil
}

// LogValue masks personal data.
func (r SignupRequest) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("username", maskAccount(r.UserName)),
		slog.Int("name_length", len([]rune(r.Name))),
	}
	if r.Phone != "" {
		attrs = append(attrs, slog.String("phone", sanitizer.MaskPhone(r.Phone)))
	}
	return slog.GroupValue(attrs...)
}

// Signup is the validation glue of the signup screen.
type Signup struct {
	*screen
	cat *catalog.Catalog
}

// NewSignup creates the signup fields for the catalog's variant and sets up
// the coordinator. The repeat password field compares against the live value
// of the password field.
func NewSignup(cat *catalog.Catalog, opts ...form.Option) (*Signup, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	s := &Signup{screen: newScreen(opts...), cat: cat}

	_, name := s.add(FieldName, cat.NameRules())
	_, account := s.add(cat.AccountField(), cat.AccountRules())
	specs := []form.Spec{name, account}

	if rules := cat.PhoneRules(); rules != nil {
		_, ph := s.add(FieldPhone, rules)
		specs = append(specs, ph)
	}

	password, pw := s.add(FieldPassword, cat.PasswordRules())
	_, repeat := s.add(FieldRepeatPassword, cat.RepeatPasswordRules(password.Text))
	specs = append(specs, pw, repeat)

	if err := s.coordinator.Setup(specs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Submit validates every field and calls onSuccess once with the request
// when all are valid.
func (s *Signup) Submit(ctx context.Context, onSuccess func(SignupRequest)) (validator.Outcome, error) {
	return s.submit(ctx, func(context.Context) {
		if onSuccess != nil {
			onSuccess(s.Request())
		}
	})
}

// Request builds the request from the current field values.
func (s *Signup) Request() SignupRequest {
	req := SignupRequest{
		Name:     sanitizer.Name(s.text(FieldName)),
		Password: s.text(FieldPassword),
	}

	account := s.text(s.cat.AccountField())
	if s.cat.Variant() == catalog.VariantUserNamePhone {
		req.UserName = sanitizer.UserName(account)
		req.Phone = phone.Format(s.text(FieldPhone), s.cat.Config().PhoneRegion)
	} else {
		req.UserName = sanitizer.Email(account)
	}
	return req
}

func maskAccount(account string) string {
	if masked := sanitizer.MaskEmail(account); masked != account {
		return masked
	}
	if n := len([]rune(account)); n > 1 {
		return string([]rune(account)[:1]) + "***"
	}
	return "***"
}
