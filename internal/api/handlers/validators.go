package handlers

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"commodity-profits/internal/model"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "commodity" binding tag, which accepts only
// exact catalog names. Safe to call more than once; every call reports the
// outcome of the first.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.Newf("binding engine is %T, not *validator.Validate", binding.Validator.Engine())
			return
		}
		registerErr = errors.Wrap(v.RegisterValidation("commodity", validCommodity), "register commodity validator")
	})
	return registerErr
}

func validCommodity(fl validator.FieldLevel) bool {
	_, found := model.CommodityIndex(fl.Field().String())
	return found
}
