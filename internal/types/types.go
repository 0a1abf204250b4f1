package types

// Token is one morpheme produced by a segmentor.
// Details holds the dictionary feature columns; for IPADIC the first four
// are the POS hierarchy and the rest are conjugation and reading data.
type Token struct {
	Text           string
	ByteStart      int
	ByteEnd        int
	Position       int
	PositionLength int
	Details        []string
}

type Tokenizer interface {
	Analyze(string) ([]Token, error)
	UseSegmentor(Segmentor)
	UseFilter(Filter)
}

type Segmentor interface {
	Cut(text string) ([]Token, error)
}

// Filter takes ownership of the input slice and returns the filtered one.
type Filter interface {
	Name() string
	Apply([]Token) ([]Token, error)
}

type Cache[V any] interface {
	Get(string) (V, bool)
	Put(string, V)
	Len() int
	Clear()
}
