package conf

// DefaultTableSize - Number of buckets used when no table size is configured
const DefaultTableSize int64 = 179

// MaxTableSize - Largest table size the 32 bit hash accumulator can address
const MaxTableSize int64 = 1<<32 - 1

// HashMultiplier - Multiplier used in the polynomial rolling hash
const HashMultiplier uint32 = 31

// FieldSeparator - Separates fields in a course data line
const FieldSeparator string = ","

// Whitespace - Characters trimmed from both ends of fields and user input
const Whitespace string = " \t\n\r"

// RuleWidth - Width of the horizontal rules framing course listings
const RuleWidth int = 50
