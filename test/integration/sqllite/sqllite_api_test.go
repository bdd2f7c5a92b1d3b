package sqllite

import (
	"testing"

	"github.com/RealZimboGuy/flowbuilder/test/integration/common"
)

func TestSqlLite_API(t *testing.T) {
	setupSqlLiteTestInstance(t)
	common.RunAPISuite(t, common.StartServer(t))
}
