package main

import (
	"github.com/slowlang/bugs/statement"
)

// Built-in program fragments. The parser producing trees from source
// text lives outside this module, so the tool ships a few known
// programs to run analyses on.
var samples = map[string]statement.Statement{
	"zigzag": &statement.Block{List: []statement.Statement{
		&statement.Call{Name: statement.Move},
		&statement.Call{Name: statement.TurnLeft},
		&statement.Call{Name: statement.Move},
		&statement.Call{Name: statement.TurnRight},
	}},

	"wander": &statement.Block{List: []statement.Statement{
		&statement.While{
			Cond: "true",
			Body: &statement.Block{List: []statement.Statement{
				&statement.IfElse{
					Cond: "next-is-empty",
					Then: &statement.Block{List: []statement.Statement{
						&statement.Call{Name: statement.Move},
					}},
					Else: &statement.Block{List: []statement.Statement{
						&statement.Call{Name: statement.TurnLeft},
					}},
				},
			}},
		},
	}},

	"hunter": &statement.Block{List: []statement.Statement{
		&statement.While{
			Cond: "true",
			Body: &statement.Block{List: []statement.Statement{
				&statement.If{
					Cond: "next-is-enemy",
					Body: &statement.Block{List: []statement.Statement{
						&statement.Call{Name: statement.Infect},
					}},
				},
				&statement.Call{Name: "seek"},
			}},
		},
	}},

	"idle": &statement.Block{},
}
