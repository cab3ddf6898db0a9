package commands

import (
	"tableflip.dev/semana/pkg/app"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// loadService opens the store and binds a service to the signed-in user, or
// to the shared local identity when nobody is signed in.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	user := record.LocalUser
	if s, ok := p.Session(); ok {
		user = s.Username
	}
	return app.New(p, user), nil
}
