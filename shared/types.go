package shared

// TransactionKind names the two movements an account can record.
type TransactionKind string

const (
	Deposit    TransactionKind = "Deposit"
	Withdrawal TransactionKind = "Withdrawal"
)

// DefaultBranch is the single branch every account belongs to.
const DefaultBranch = "0001"
