package consts

const (
	// LamportsPerSOL 1 SOL = 10^9 lamports
	LamportsPerSOL uint64 = 1_000_000_000
)
