package web

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators registers the custom binding tags used by request types
// on gin's default validator. Only the first call has an effect.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		registerErr = v.RegisterValidation("amount", moneypkg.ValidAmount)
	})

	return registerErr
}
