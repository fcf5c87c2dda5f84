package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeKey(t *testing.T) {
	assert.Equal(t, "'orders'", EncodeKey("orders"))
	assert.Equal(t, "'o%27%27brien'", EncodeKey("o'brien"))
	assert.Equal(t, "'Acme%20Corp'", EncodeKey("Acme Corp"))
	assert.Equal(t, "'a%2Fb'", EncodeKey("a/b"))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "ToolkitProject('Acme')/FunctionApps", projectFunctionAppsPath("Acme"))
	assert.Equal(t, "ToolkitAzureFunctionApp(Name='api',ProjectName='Acme')", functionAppPath("Acme", "api"))
	assert.Equal(t, "ToolkitAzureFunctionApp(Name='api',ProjectName='Acme')/Publishes", publishesPath("Acme", "api"))
	assert.Equal(t, "UserProfile(42)", userProfilePath("42"))
}

func TestUserProfilePathEscapesID(t *testing.T) {
	assert.Equal(t, "UserProfile(a%20b%2Fc)", userProfilePath("a b/c"))
	assert.Equal(t, "UserProfile(1%3F$x=y)", userProfilePath("1?$x=y"))
}

func TestQueryEncode(t *testing.T) {
	assert.Equal(t, "", Query{}.Encode())
	assert.Equal(t, "$expand=Publishes&$filter=Deleted%20eq%20null", listQuery.Encode())
}
