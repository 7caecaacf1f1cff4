// Package edgelist recognizes solver path sections embedded in free-form
// text and turns them into ordered lists of directed cell-to-cell edges.
//
// What:
//
//   - A section starts at a header "--- Path N ---" (N decimal) found
//     anywhere in the text; everything before it is ignored.
//   - The header is followed by zero or more edge lines "(X,Y) -> (X,Y)".
//     Leading indentation, blanks around the arrow and after the comma,
//     and trailing blanks are insignificant. Lines end with "\n", "\r\n"
//     or end of input.
//   - A section ends at the first line that is not a well-formed edge line.
//     Scanning for the next header resumes at that line.
//   - Format writes sections back in the same literal syntax, so
//     Parse(Format(s)) == s.
//
// The grammar does not check that edges form a connected walk; that is
// the stitcher's job. It is also convention-agnostic: coordinates are
// returned exactly as written. A Normalizer converts them to the grid's
// convention when the two differ.
//
// Errors:
//
//   - ErrInvalidInput: a header literal was found but its index is not a
//     decimal integer, or the header line carries trailing text.
//
// Complexity:
//
//   - Parse: O(n) in the input length.
//   - Format: O(E) in the number of edges.
package edgelist
