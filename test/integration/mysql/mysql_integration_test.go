//go:build integration

package mysql

import (
	"testing"

	"github.com/RealZimboGuy/flowbuilder/test/integration/common"
)

func TestMySQL_DefinitionRepository(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T) {
		common.RunDefinitionRepositorySuite(t, common.OpenDatabase(t))
	})
}

func TestMySQL_UserRepository(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T) {
		common.RunUserRepositorySuite(t, common.OpenDatabase(t))
	})
}
