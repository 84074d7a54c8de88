/*

Process of analysis

Program Text ->
	parse (external) ->
Statement Tree (statement) ->
	analyze ->
Report (count, depth, ...)

The parser producing the tree and whatever consumes the report both live
outside this module.

*/
package statement
