// Package catalog holds the rule sets used by the login and signup forms.
//
// A Catalog is built from a Config and comes in two variants. VariantEmail
// identifies accounts by email address. VariantUserNamePhone identifies them
// by user name and additionally collects a phone number. Both share the full
// name and password rules.
//
// Every accessor returns a fresh RuleSet, so callers may extend the result
// without affecting other fields:
//
//	cat, err := catalog.New(catalog.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	repeat := cat.RepeatPasswordRules(password.Text)
//
// The package also embeds the translated error messages for every validation
// code. Translator loads them into an i18n.Translator.
package catalog
