// Package profile loads generation profiles from YAML.
//
// A profile bundles the inputs of a generation run so they can be kept under
// version control instead of being spelled out as flags:
//
//	records:
//	  rows: 500
//	  seed: 7
//	  genders: [Male, Female, Non-Binary]
//	  countries: [USA, UK]
//	sentences:
//	  count: 20
//	  word_count: 10
//	  targets: ["machine learning"]
//	  vocabulary: [machine, learning, data, model]
//
// Every section is optional. An omitted rows or count leaves the caller's
// default in place, while an explicit 0 asks for a header-only file or no
// sentences. Omitted label sets keep the generator defaults;
// a label set written as an empty list is rejected by Validate.
package profile
