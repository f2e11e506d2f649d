package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

const (
	namespaceSeparator = "."
	emptyTagName       = "-"
	yamlTagName        = "yaml"
	jsonTagName        = "json"
	requiredTagName    = "required"
)

// Min returns the smaller of x or y.
func Min(x, y int) int {
	if x > y {
		return y
	}
	return x
}

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// ResolveYAMLFile returns the path of a yaml file, accepting both the .yml and .yaml extension
func ResolveYAMLFile(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" {
		return path, nil
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	matches, _ := doublestar.Glob(os.DirFS(dir), strings.TrimSuffix(base, ext)+".{yml,yaml}")
	if len(matches) == 0 {
		return "", errs.New(fmt.Sprintf("`%s` file not found", path))
	}
	// If there are files with the both extensions, pick the first match
	return filepath.Join(dir, matches[0]), nil
}

// GetValidator returns a struct validator with english error messages
func GetValidator() (*validator.Validate, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	configureValidator(validate, trans)
	return validate, nil
}

// configureValidator configure the struct validator
func configureValidator(validate *validator.Validate, trans ut.Translator) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get(yamlTagName)
		if tag == "" {
			tag = fld.Tag.Get(jsonTagName)
		}
		// nolint: gomnd
		name := strings.SplitN(tag, ",", 2)[0]
		if name == emptyTagName || name == "" {
			return fld.Name
		}
		return name
	})

	// nolint: errcheck
	validate.RegisterTranslation(requiredTagName, trans, func(ut ut.Translator) error {
		return ut.Add(requiredTagName, "{0} field is required!", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		i := strings.Index(fe.Namespace(), namespaceSeparator)
		t, _ := ut.T(requiredTagName, fe.Namespace()[i+1:])
		return t
	})
}

// ValidateStruct validates v and collects every invalid field into an errs.ErrInvalidConf
func ValidateStruct(validate *validator.Validate, v interface{}, source string) error {
	validateErr := validate.Struct(v)
	if validateErr == nil {
		return nil
	}
	validationErrs, ok := validateErr.(validator.ValidationErrors)
	if !ok {
		return validateErr
	}
	err := new(errs.ErrInvalidConf)
	err.Message = fmt.Sprintf("Invalid values provided for the following fields in `%s`: \n", source)
	for _, e := range validationErrs {
		err.Fields = append(err.Fields, e.Field())
		err.Values = append(err.Values, e.Value())
	}
	return err
}
