package instruction

// Kind 目标程序的指令枚举，borsh 编码为单字节，顺序必须与链上程序保持一致
type Kind uint8

const (
	KindAddMovieReview Kind = iota
	KindUpdateMovieReview
	KindAddComment
	KindInitializeMint
)

func (k Kind) String() string {
	switch k {
	case KindAddMovieReview:
		return "AddMovieReview"
	case KindUpdateMovieReview:
		return "UpdateMovieReview"
	case KindAddComment:
		return "AddComment"
	case KindInitializeMint:
		return "InitializeMint"
	default:
		return "Unknown"
	}
}
