// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BrunoReboul/sqlflagaudit/utilities/str"
)

const tagKeyName = "valid"

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		return false, fmt.Errorf("Should NOT be nil")
	}
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int:
		if value.(int) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isOneOfValidater accepts only the values listed in the tag, e.g. `valid:"isOneOf,exact|ordinal"`
type isOneOfValidater struct {
	acceptedValues []string
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isOneOfValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	if str.Find(v.acceptedValues, s) {
		return true, nil
	}
	return false, fmt.Errorf("Should be one of %v, got '%s'", v.acceptedValues, s)
}

// isPositiveValidater accepts integers strictly greater than zero
type isPositiveValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isPositiveValidater) validate(value interface{}) (bool, error) {
	switch n := value.(type) {
	case int64:
		if n > 0 {
			return true, nil
		}
	case int:
		if n > 0 {
			return true, nil
		}
	default:
		return false, fmt.Errorf("Should be int or int64")
	}
	return false, fmt.Errorf("Should be greater than zero, got %v", value)
}

func getValidater(tagValue string) validater {
	tagValueParts := strings.SplitN(tagValue, ",", 2)
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isPositive":
		return isPositiveValidater{}
	case "isOneOf":
		var acceptedValues []string
		if len(tagValueParts) == 2 {
			acceptedValues = strings.Split(tagValueParts[1], "|")
		}
		return isOneOfValidater{acceptedValues: acceptedValues}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return errs
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if !typeField.IsExported() {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is seen as a struct with unexported fields only: tag it `valid:"-"`
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
		} else {
			if !valueField.IsValid() {
				continue
			}
			validater := getValidater(typeField.Tag.Get(tagKeyName))
			ok, err := validater.validate(valueField.Interface())
			if !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
			}
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct, logs each finding and returns one error summing them up
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errors := getValidationErrors(structure, pedigree)
	if len(errors) > 0 {
		for _, err := range errors {
			log.Println(err)
		}
		return fmt.Errorf("%s settings validation failed, %d error(s), first one: %v", pedigree, len(errors), errors[0])
	}
	return nil
}
