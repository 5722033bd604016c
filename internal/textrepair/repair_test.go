package textrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	t.Run("inserts blank line before adjacent bullet", func(t *testing.T) {
		in := "Intro\n**1. \"First topic\"**\n- point one\n- point two"
		want := "Intro\n**1. \"First topic\"**\n\n- point one\n- point two"
		assert.Equal(t, want, Repair(in))
	})

	t.Run("repairs every occurrence", func(t *testing.T) {
		in := "\n**1. \"One\"**\n- a\n**2. \"Two\"**\n- b"
		want := "\n**1. \"One\"**\n\n- a\n**2. \"Two\"**\n\n- b"
		assert.Equal(t, want, Repair(in))
	})

	t.Run("multi-digit item numbers", func(t *testing.T) {
		in := "\n**12. \"Later item\"**\n- detail"
		want := "\n**12. \"Later item\"**\n\n- detail"
		assert.Equal(t, want, Repair(in))
	})

	t.Run("identity on text without the defect", func(t *testing.T) {
		inputs := []string{
			"",
			"plain prose with no lists",
			"**1. \"Already fine\"**\n\n- separated by blank line",
			"\n**1. Unquoted label**\n- bullet",
			"\n**x. \"Not a number\"**\n- bullet",
			"\n**1. \"Label\"**\nno bullet follows",
		}
		for _, in := range inputs {
			assert.Equal(t, in, Repair(in))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Intro\n**1. \"First\"**\n- a\n- b",
			"\n**1. \"One\"**\n- a\n**2. \"Two\"**\n- b",
			"no defect here",
		}
		for _, in := range inputs {
			once := Repair(in)
			assert.Equal(t, once, Repair(once))
		}
	})
}
