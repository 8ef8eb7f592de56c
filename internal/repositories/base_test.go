package repositories

import (
	"os"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func reconciliationComparer() cmp.Option {
	return cmp.Comparer(func(x, y models.MonthlyReconciliation) bool {
		return x.ID == y.ID &&
			x.FacilityID == y.FacilityID &&
			x.BankAccountID == y.BankAccountID &&
			x.Month == y.Month &&
			x.Year == y.Year &&
			x.Status == y.Status &&
			x.ExpectedCashCheck.Equal(y.ExpectedCashCheck) &&
			x.ExpectedCard.Equal(y.ExpectedCard) &&
			x.ActualCashCheck.Equal(y.ActualCashCheck) &&
			x.ActualCard.Equal(y.ActualCard)
	})
}
