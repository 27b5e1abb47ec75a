package validators

import (
	"net"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsEmailValid vérifie la forme de l'adresse.
func IsEmailValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsEmailDomainValid vérifie que le domaine de l'adresse existe (MX ou A).
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// IsSlugValid : minuscules, chiffres et tirets, façon "hydro-naissance".
func IsSlugValid(slug string) bool {
	return slug != "" && len(slug) <= 100 && slugRe.MatchString(slug)
}
