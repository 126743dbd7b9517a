package dto_test

import (
	"testing"

	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	valid := dto.AddRoutingRequest{TargetUserID: "u", Note: "n", Urgency: "Penting"}
	assert.NoError(t, binding.Validator.ValidateStruct(valid))

	noUrgency := dto.AddRoutingRequest{TargetUserID: "u", Note: "n"}
	assert.NoError(t, binding.Validator.ValidateStruct(noUrgency))

	invalid := dto.AddRoutingRequest{TargetUserID: "u", Note: "n", Urgency: "Kilat"}
	assert.Error(t, binding.Validator.ValidateStruct(invalid))

	badDecision := dto.DecisionRequest{Decision: "Menunggu"}
	assert.Error(t, binding.Validator.ValidateStruct(badDecision))
}
