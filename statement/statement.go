package statement

type (
	// Kind tags the variant of a Statement.
	Kind int

	// Condition is a guard tested by the robot at run time.
	// It's opaque to analysis, only the runtime interprets it.
	Condition string

	// Statement is a node of a BugsWorld program fragment.
	// The variant set is closed: Block, If, IfElse, While and Call
	// are the only implementations.
	Statement interface {
		Kind() Kind

		stmt()
	}

	Block struct {
		List []Statement
	}

	If struct {
		Cond Condition
		Body Statement
	}

	IfElse struct {
		Cond Condition
		Then Statement
		Else Statement
	}

	While struct {
		Cond Condition
		Body Statement
	}

	Call struct {
		Name string
	}
)

const (
	KindBlock Kind = iota
	KindIf
	KindIfElse
	KindWhile
	KindCall
)

// Primitive instructions understood by every robot.
// Calls to any other name refer to user procedures.
const (
	Move      = "move"
	TurnLeft  = "turnleft"
	TurnRight = "turnright"
	Infect    = "infect"
	Skip      = "skip"
)

var primitives = map[string]struct{}{
	Move:      {},
	TurnLeft:  {},
	TurnRight: {},
	Infect:    {},
	Skip:      {},
}

// IsPrimitive reports whether name is one of the five primitive
// instructions. The match is exact, names are case sensitive.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

func (s *Block) Kind() Kind  { return KindBlock }
func (s *If) Kind() Kind     { return KindIf }
func (s *IfElse) Kind() Kind { return KindIfElse }
func (s *While) Kind() Kind  { return KindWhile }
func (s *Call) Kind() Kind   { return KindCall }

func (s *Block) stmt()  {}
func (s *If) stmt()     {}
func (s *IfElse) stmt() {}
func (s *While) stmt()  {}
func (s *Call) stmt()   {}

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "BLOCK"
	case KindIf:
		return "IF"
	case KindIfElse:
		return "IF_ELSE"
	case KindWhile:
		return "WHILE"
	case KindCall:
		return "CALL"
	}

	return "UNKNOWN"
}
