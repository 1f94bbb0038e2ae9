package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Onwuagba/Telinga/internal/constants"
	"github.com/Onwuagba/Telinga/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_]+)\}\}`)

// RenderTemplate replaces every {{field}} placeholder with the customer's
// field value. A recognized field with no value substitutes the empty
// string; unknown placeholders were rejected at template creation and are
// left untouched here. Rendering never fails.
func RenderTemplate(body string, customer *model.Customer) string {
	rendered := body
	for _, field := range model.CustomerFields {
		placeholder := fmt.Sprintf("{{%s}}", field)
		if !strings.Contains(rendered, placeholder) {
			continue
		}

		value, _ := customer.Field(field)
		rendered = strings.ReplaceAll(rendered, placeholder, value)
	}

	return rendered
}

// ValidateTemplate rejects bodies referencing placeholders that are not
// customer fields. Runs at template creation, not at send time.
func ValidateTemplate(body string) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		name := match[1]
		if !isCustomerField(name) {
			return NewServiceError(constants.ErrCodeInvalidTemplate,
				fmt.Errorf("unknown placeholder {{%s}}", name))
		}
	}

	return nil
}

func isCustomerField(name string) bool {
	for _, field := range model.CustomerFields {
		if field == name {
			return true
		}
	}
	return false
}
