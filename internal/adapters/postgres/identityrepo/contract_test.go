package identityrepo

import (
	"testing"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/contracttest"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/testutil"
	identityrepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
)

func TestContract_PostgresIdentityRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t, "identities")

	contracttest.RunIdentityRepo(t, func(t *testing.T) (identityrepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
