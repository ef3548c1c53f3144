package consts

import "localsolana-initmint/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr = "11111111111111111111111111111111"
	TokenProgramStr  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	// Sysvars
	RentSysvarStr = "SysvarRent111111111111111111111111111111111"

	// 已部署的 movie review 程序（包含 InitializeMint 指令）
	MovieReviewProgramStr = "4QPCBtQ1qSwTmUy9yrGZoqCjZPen8eCE2HcHtKeNWYj6"
)

var (
	// Programs
	SystemProgram      = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram       = types.PubkeyFromBase58(TokenProgramStr)
	MovieReviewProgram = types.PubkeyFromBase58(MovieReviewProgramStr)

	// Sysvars
	RentSysvar = types.PubkeyFromBase58(RentSysvarStr)
)
