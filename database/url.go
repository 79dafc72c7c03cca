package database

import (
	"fmt"
	"net/url"

	"datedim/config"
)

// BuildURL constructs the database URL from the connection fields of the
// configuration. A trusted connection omits userinfo and relies on the
// server's peer or ident authentication.
func BuildURL(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		Path:     "/" + cfg.Database,
		RawQuery: "sslmode=disable",
	}
	if !cfg.TrustedConnection {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String()
}
