package reportrepo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/configpkg"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	"github.com/gigpay/gigpay/pkg/randompkg"
)

var testConfig configpkg.Config

func TestMain(m *testing.M) {
	var err error

	testConfig, err = configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	os.Exit(m.Run())
}

// The report window below lies far in the past so that rows committed by other
// tests cannot leak into the aggregates.
var (
	windowStart = time.Date(1994, time.March, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(1994, time.March, 31, 23, 59, 59, 0, time.UTC)
	inWindow    = time.Date(1994, time.March, 15, 12, 0, 0, 0, time.UTC)
	outOfWindow = time.Date(1994, time.June, 1, 12, 0, 0, 0, time.UTC)
)

func createProfile(t *testing.T, db dbpkg.SQLInterface, profileType, profession string) domain.Profile {
	t.Helper()

	p := domain.Profile{
		FirstName:  randompkg.Name(),
		LastName:   randompkg.Name(),
		Profession: profession,
		Balance:    randompkg.MoneyAmountBetween(100, 1_000).Round(2),
		Type:       profileType,
	}

	row := db.QueryRowContext(context.Background(), `
		INSERT INTO profiles (first_name, last_name, profession, balance, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.FirstName, p.LastName, p.Profession, p.Balance, p.Type)

	require.NoError(t, row.Scan(&p.ID, &p.CreatedAt))

	return p
}

func createContract(t *testing.T, db dbpkg.SQLInterface, clientID, contractorID int64) domain.Contract {
	t.Helper()

	c := domain.Contract{
		Terms:        randompkg.String(20),
		Status:       domain.ContractStatusInProgress,
		ClientID:     clientID,
		ContractorID: contractorID,
	}

	row := db.QueryRowContext(context.Background(), `
		INSERT INTO contracts (terms, status, client_id, contractor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.Terms, c.Status, c.ClientID, c.ContractorID)

	require.NoError(t, row.Scan(&c.ID, &c.CreatedAt))

	return c
}

func createJob(t *testing.T, db dbpkg.SQLInterface, contractID int64, price string, paid bool, paymentDate *time.Time) domain.Job {
	t.Helper()

	j := domain.Job{
		ContractID:  contractID,
		Description: randompkg.String(15),
		Price:       decimal.RequireFromString(price),
		Paid:        paid,
		PaymentDate: paymentDate,
	}

	row := db.QueryRowContext(context.Background(), `
		INSERT INTO jobs (contract_id, description, price, paid, payment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		j.ContractID, j.Description, j.Price, j.Paid, j.PaymentDate)

	require.NoError(t, row.Scan(&j.ID, &j.CreatedAt))

	return j
}

func TestTotalOutstanding(t *testing.T) {
	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)
	testRepo := NewRepoPGS(tx)

	client := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	contractor := createProfile(t, tx, domain.TypeContractor, randompkg.Profession())
	contract := createContract(t, tx, client.ID, contractor.ID)

	createJob(t, tx, contract.ID, "300.50", false, nil)
	createJob(t, tx, contract.ID, "99.50", false, nil)
	createJob(t, tx, contract.ID, "100", true, &inWindow)

	got, err := testRepo.TotalOutstanding(context.Background(), client.ID)
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.RequireFromString("400")), got.String())
}

func TestTotalOutstandingNoJobs(t *testing.T) {
	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)
	testRepo := NewRepoPGS(tx)

	client := createProfile(t, tx, domain.TypeClient, randompkg.Profession())

	got, err := testRepo.TotalOutstanding(context.Background(), client.ID)
	require.NoError(t, err)
	require.True(t, got.IsZero(), got.String())
}

func TestBestProfessions(t *testing.T) {
	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)
	testRepo := NewRepoPGS(tx)

	client := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	wizard := createProfile(t, tx, domain.TypeContractor, "wizard")
	fighter := createProfile(t, tx, domain.TypeContractor, "fighter")

	wizardContract := createContract(t, tx, client.ID, wizard.ID)
	fighterContract := createContract(t, tx, client.ID, fighter.ID)

	createJob(t, tx, wizardContract.ID, "200", true, &inWindow)
	createJob(t, tx, wizardContract.ID, "100", true, &inWindow)
	createJob(t, tx, fighterContract.ID, "250", true, &inWindow)
	createJob(t, tx, wizardContract.ID, "999", true, &outOfWindow)
	createJob(t, tx, fighterContract.ID, "999", false, nil)

	got, err := testRepo.BestProfessions(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "wizard", got[0].Profession)
	require.True(t, got[0].TotalEarned.Equal(decimal.RequireFromString("300")), got[0].TotalEarned.String())
	require.Equal(t, "fighter", got[1].Profession)
	require.True(t, got[1].TotalEarned.Equal(decimal.RequireFromString("250")), got[1].TotalEarned.String())
}

func TestBestClients(t *testing.T) {
	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)
	testRepo := NewRepoPGS(tx)

	bigSpender := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	smallSpender := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	contractor := createProfile(t, tx, domain.TypeContractor, randompkg.Profession())

	bigContract := createContract(t, tx, bigSpender.ID, contractor.ID)
	smallContract := createContract(t, tx, smallSpender.ID, contractor.ID)

	createJob(t, tx, bigContract.ID, "400", true, &inWindow)
	createJob(t, tx, smallContract.ID, "150", true, &inWindow)
	createJob(t, tx, smallContract.ID, "999", true, &outOfWindow)

	got, err := testRepo.BestClients(context.Background(), windowStart, windowEnd, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, bigSpender.ID, got[0].ID)
	require.Equal(t, bigSpender.FirstName, got[0].FirstName)
	require.True(t, got[0].TotalPaid.Equal(decimal.RequireFromString("400")), got[0].TotalPaid.String())
	require.Equal(t, smallSpender.ID, got[1].ID)
	require.True(t, got[1].TotalPaid.Equal(decimal.RequireFromString("150")), got[1].TotalPaid.String())
}

func TestBestClientsLimit(t *testing.T) {
	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)
	testRepo := NewRepoPGS(tx)

	bigSpender := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	smallSpender := createProfile(t, tx, domain.TypeClient, randompkg.Profession())
	contractor := createProfile(t, tx, domain.TypeContractor, randompkg.Profession())

	createJob(t, tx, createContract(t, tx, bigSpender.ID, contractor.ID).ID, "400", true, &inWindow)
	createJob(t, tx, createContract(t, tx, smallSpender.ID, contractor.ID).ID, "150", true, &inWindow)

	got, err := testRepo.BestClients(context.Background(), windowStart, windowEnd, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, bigSpender.ID, got[0].ID)
}
