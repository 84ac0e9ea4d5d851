/*
Package markdown repairs the formatting slips text generators leave in Markdown.

	+-------------+     +-------------+     +-------------+
	|  Document   | --> |  Corrector  | --> |    Diff     |
	|  (string)   |     | (rule list) |     |  (records)  |
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |  Classifier |
	                    |  (fences)   |
	                    +-------------+

🎯 Purpose:
- Fix mismatched bold markers around bracketed and parenthesized spans
- Collapse over-counted inline code delimiters
- Close bold markers left open at the start of a line
- Insert the missing space after heading and list markers

🔄 Flow:
 1. Document rules run over the full text, in catalog order
 2. Line rules run per line, skipping lines inside ``` fences
 3. The corrected text is compared line by line with the original

⚡ Guarantees:
- Correcting never fails; a rule that does not match is a no-op
- Rules see the output of the rules before them
- Fenced code is never touched by line rules

The package works on text only. It never builds a document tree.

🔍 Example:

	fixed := markdown.CorrectText("**[Done]]\n##Title")
	for _, c := range markdown.ComputeDiff(original, fixed) {
		fmt.Printf("%d: %s -> %s\n", c.Line, c.Before, c.After)
	}
*/
package markdown
