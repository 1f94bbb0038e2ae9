package service_test

import (
	"testing"

	"github.com/Onwuagba/Telinga/internal/constants"
	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	customer := &model.Customer{
		FirstName:   "Ada",
		LastName:    "Obi",
		PhoneNumber: "2348012345678",
		Email:       "ada@example.com",
	}

	t.Run("replaces every known placeholder", func(t *testing.T) {
		rendered := service.RenderTemplate("Hi {{first_name}} {{last_name}}, confirm {{email}}", customer)

		assert.Equal(t, "Hi Ada Obi, confirm ada@example.com", rendered)
	})

	t.Run("repeated placeholder is replaced everywhere", func(t *testing.T) {
		rendered := service.RenderTemplate("{{first_name}}, yes you, {{first_name}}!", customer)

		assert.Equal(t, "Ada, yes you, Ada!", rendered)
	})

	t.Run("missing field value substitutes empty string", func(t *testing.T) {
		rendered := service.RenderTemplate("Call us at {{phone_number}}", &model.Customer{FirstName: "Ada"})

		assert.Equal(t, "Call us at ", rendered)
		assert.NotContains(t, rendered, "{{")
	})

	t.Run("body without placeholders passes through", func(t *testing.T) {
		rendered := service.RenderTemplate("Plain message", customer)

		assert.Equal(t, "Plain message", rendered)
	})
}

func TestValidateTemplate(t *testing.T) {
	t.Run("accepts known placeholders", func(t *testing.T) {
		err := service.ValidateTemplate("Hi {{first_name}}, reply to {{email}}")

		assert.NoError(t, err)
	})

	t.Run("accepts body without placeholders", func(t *testing.T) {
		assert.NoError(t, service.ValidateTemplate("No placeholders here"))
	})

	t.Run("rejects unknown placeholder", func(t *testing.T) {
		err := service.ValidateTemplate("Your balance is {{account_balance}}")

		assert.Error(t, err)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeInvalidTemplate, serviceErr.Code)
	})

	t.Run("rejects unknown placeholder next to valid ones", func(t *testing.T) {
		err := service.ValidateTemplate("Hi {{first_name}}, your {{order_id}} shipped")

		assert.Error(t, err)
	})
}
