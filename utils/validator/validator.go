package validatorx

import (
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

func get() *gpvalidator.Validate {
	once.Do(func() {
		v = gpvalidator.New()
		// report fields by their json name, as sent by clients and backend services
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return v
}

// ValidateStruct validates a request DTO or a decoded backend record.
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}
