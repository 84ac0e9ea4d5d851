/*
Package config manages configuration parsing and validation for mdfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Selects which files a directory walk collects
- Tunes the corrector (bold line limit, disabled rules)
- Tunes the report (display width) and fix mode (backups, workers)

🔄 Flow:
 1. Discover looks for .mdfix.yaml, .mdfix.yml, .mdfix.hcl, .mdfix.json
 2. The parser is picked by file extension
 3. Unset fields get defaults, then the whole config is validated
 4. Command line flags override the loaded values

🔍 Example (.mdfix.hcl):

	extensions     = [".md", ".markdown"]
	exclude        = ["vendor/**", "drafts/**"]
	disabled_rules = [rule.list_item_space]
	backup         = true
*/
package config
