package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

func TestReadRawCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, os.WriteFile(path, []byte(`Transaction Date,Post Date,Description,Amount,Memo
01/05/2026,01/06/2026,ACH RENT SUNRISE APTS,-1500.00,January rent
01/02/2026,01/02/2026,ACME PAYROLL DIRECT DEP,2900.00,
`), 0644))

	records, err := ReadRawCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// File order is preserved and every header becomes a map key.
	assert.Equal(t, "ACH RENT SUNRISE APTS", records[0][models.ColDescription])
	assert.Equal(t, "January rent", records[0][models.ColMemo])
	assert.Equal(t, "01/02/2026", records[1][models.ColTransactionDate])
	assert.Equal(t, "", records[1][models.ColMemo])
}

func TestReadRawCSVMissingFile(t *testing.T) {
	_, err := ReadRawCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "transactions.csv")

	transactions := []models.NormalizedTransaction{
		{
			TransactionID: "tx_raw_00001",
			Date:          "2026-01-02",
			PostedDate:    "2026-01-02",
			AccountID:     "acc_checking",
			Amount:        "2900.00",
			Merchant:      "Acme Payroll",
			Description:   "ACME PAYROLL DIRECT DEP",
			CategoryID:    "cat_income",
			PaymentMethod: "direct_deposit",
		},
		{
			TransactionID: "tx_raw_00002",
			Date:          "2026-01-07",
			PostedDate:    "2026-01-08",
			AccountID:     "acc_checking",
			Amount:        "-400.00",
			Merchant:      "Chase Online Transfer",
			Description:   "CHASE ONLINE TRANSFER TO SAVINGS 8841",
			CategoryID:    "cat_transfers",
			PaymentMethod: "transfer",
			IsTransfer:    true,
		},
	}

	require.NoError(t, WriteTransactionsToCSV(transactions, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content,
		"transaction_id,date,posted_date,account_id,amount,merchant,description,category_id,subcategory_id,payment_method,is_transfer,notes")
	assert.Contains(t, content, "tx_raw_00001")
	assert.Contains(t, content, ",true,")
	assert.Contains(t, content, ",false,")
}

func TestWriteTransactionsCustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	path := filepath.Join(t.TempDir(), "transactions.csv")
	transactions := []models.NormalizedTransaction{
		{TransactionID: "tx_raw_00001", Date: "2026-01-02", AccountID: "acc_checking", Amount: "25.00"},
	}

	require.NoError(t, WriteTransactionsToCSV(transactions, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "transaction_id;date;posted_date")
	assert.Contains(t, content, "tx_raw_00001;2026-01-02")
	assert.NotContains(t, content, "transaction_id,")
}

func TestWriteUnmatchedToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unmatched.csv")

	rows := []models.UnmatchedRow{
		{
			SourceFile:  "data/raw/cc.csv",
			Date:        "2026-01-03",
			Description: "MYSTERY VENDOR 42",
			CategoryID:  "cat_uncategorized",
		},
	}

	require.NoError(t, WriteUnmatchedToCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// The review table leads with the source file and carries no transaction id.
	assert.Contains(t, content, "source_file,")
	assert.NotContains(t, content, "transaction_id")
	assert.Contains(t, content, "MYSTERY VENDOR 42")
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, RemoveIfExists(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing a file that is already gone is not an error.
	assert.NoError(t, RemoveIfExists(path))
}
