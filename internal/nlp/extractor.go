package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aauhelpdesk/helpdesk-go/internal/sliceutil"
)

// SlotFunc extracts all values for one slot type from normalized text.
type SlotFunc func(text string) []string

// Extractor holds a registry of per-slot extraction functions.
// New slot types register a function instead of growing a switch.
type Extractor struct {
	slots map[string]SlotFunc
	order []string
	now   func() time.Time
}

// NewExtractor creates an extractor with the built-in slot registry.
func NewExtractor() *Extractor {
	e := &Extractor{
		slots: make(map[string]SlotFunc),
		now:   time.Now,
	}
	e.Register(SlotDepartment, extractDepartments)
	e.Register(SlotSemester, extractSemesters)
	e.Register(SlotYear, e.extractYears)
	e.Register(SlotFeeAmount, extractFeeAmounts)
	e.Register(SlotDocumentType, extractDocumentTypes)
	e.Register(SlotStudentID, extractStudentIDs)
	return e
}

// Register adds or replaces the extraction function for a slot type.
func (e *Extractor) Register(slot string, fn SlotFunc) {
	if _, exists := e.slots[slot]; !exists {
		e.order = append(e.order, slot)
	}
	e.slots[slot] = fn
}

// Extract runs every registered slot function over normalized text.
// Slots with no values are omitted from the result.
func (e *Extractor) Extract(text string) map[string][]string {
	return e.ExtractOnly(text, e.order)
}

// ExtractOnly runs just the named slot functions. Used by the follow-up
// branch, where only the missing slots should be filled.
func (e *Extractor) ExtractOnly(text string, slots []string) map[string][]string {
	params := make(map[string][]string)
	for _, slot := range slots {
		fn, ok := e.slots[slot]
		if !ok {
			continue
		}
		values := fn(text)
		if len(values) == 0 {
			continue
		}
		params[slot] = sliceutil.Deduplicate(values, func(v string) string { return v })
	}
	return params
}

// departmentAliases maps spoken forms to canonical department names.
// Longer aliases are listed first so "comp sci" wins over "sci".
var departmentAliases = []struct {
	alias     string
	canonical string
}{
	{"computer science", "computer science"},
	{"software engineering", "software engineering"},
	{"comp sci", "computer science"},
	{"cse", "computer science"},
	{"electrical engineering", "electrical engineering"},
	{"civil engineering", "civil engineering"},
	{"mechanical engineering", "mechanical engineering"},
	{"engineering", "engineering"},
	{"medicine", "medicine"},
	{"medical", "medicine"},
	{"pharmacy", "pharmacy"},
	{"nursing", "nursing"},
	{"business", "business"},
	{"commerce", "business"},
	{"accounting", "accounting"},
	{"management", "management"},
	{"economics", "economics"},
	{"law", "law"},
	{"political science", "political science"},
	{"sociology", "sociology"},
	{"psychology", "psychology"},
	{"biology", "biology"},
	{"chemistry", "chemistry"},
	{"physics", "physics"},
	{"mathematics", "mathematics"},
	{"math", "mathematics"},
}

func extractDepartments(text string) []string {
	var values []string
	consumed := text
	for _, da := range departmentAliases {
		if containsWord(consumed, da.alias) {
			values = append(values, da.canonical)
			// Blank out the match so "computer science" does not also
			// report "science"-bearing shorter aliases.
			consumed = strings.ReplaceAll(consumed, da.alias, " ")
		}
	}
	return values
}

// semesterAliases maps spoken forms to canonical semester names.
var semesterAliases = []struct {
	alias     string
	canonical string
}{
	{"first semester", "first"},
	{"second semester", "second"},
	{"third semester", "third"},
	{"1st semester", "first"},
	{"2nd semester", "second"},
	{"3rd semester", "third"},
	{"semester one", "first"},
	{"semester two", "second"},
	{"first", "first"},
	{"second", "second"},
	{"third", "third"},
	{"1st", "first"},
	{"2nd", "second"},
	{"3rd", "third"},
	{"fall", "fall"},
	{"autumn", "fall"},
	{"spring", "spring"},
	{"summer", "summer"},
}

func extractSemesters(text string) []string {
	var values []string
	consumed := text
	for _, sa := range semesterAliases {
		if containsWord(consumed, sa.alias) {
			values = append(values, sa.canonical)
			consumed = strings.ReplaceAll(consumed, sa.alias, " ")
		}
	}
	return values
}

var (
	yearRe        = regexp.MustCompile(`\b(20\d{2})\b`)
	ordinalYearRe = regexp.MustCompile(`\b([1-5])(?:st|nd|rd|th)?\s+year\b`)
	feeRe         = regexp.MustCompile(`\b(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(birr|etb|usd|\$)?`)
	studentIDRe   = regexp.MustCompile(`\b(?:ugr|gsr|etr)[/-]?\d{3,5}[/-]?\d{2}\b`)
)

// extractYears finds calendar years and ordinal study years.
// "3rd year" maps onto the calendar year that cohort enrolled in.
// Values outside [2000, currentYear+2] are rejected.
func (e *Extractor) extractYears(text string) []string {
	currentYear := e.now().Year()
	minYear, maxYear := 2000, currentYear+2

	var values []string
	for _, m := range yearRe.FindAllStringSubmatch(text, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil || year < minYear || year > maxYear {
			continue
		}
		values = append(values, m[1])
	}
	for _, m := range ordinalYearRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		year := currentYear - 4 + n
		if year < minYear || year > maxYear {
			continue
		}
		values = append(values, strconv.Itoa(year))
	}
	return values
}

// extractFeeAmounts finds monetary amounts. The currency token is
// dropped from the value: "5000 birr" yields "5000". Bare four-digit
// numbers that read as calendar years are skipped unless a currency
// token disambiguates them.
func extractFeeAmounts(text string) []string {
	var values []string
	for _, m := range feeRe.FindAllStringSubmatch(text, -1) {
		amount, currency := m[1], m[2]
		if currency == "" && looksLikeYear(amount) {
			continue
		}
		values = append(values, amount)
	}
	return values
}

func looksLikeYear(s string) bool {
	if len(s) != 4 || !strings.HasPrefix(s, "20") {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// documentAliases maps spoken forms to canonical document types.
var documentAliases = []struct {
	alias     string
	canonical string
}{
	{"official transcript", "official transcript"},
	{"transcript", "transcript"},
	{"degree certificate", "degree certificate"},
	{"certificate", "certificate"},
	{"recommendation letter", "recommendation letter"},
	{"letter of recommendation", "recommendation letter"},
	{"enrollment verification", "enrollment verification"},
	{"verification letter", "enrollment verification"},
	{"student copy", "student copy"},
	{"diploma", "diploma"},
}

func extractDocumentTypes(text string) []string {
	var values []string
	consumed := text
	for _, da := range documentAliases {
		if strings.Contains(consumed, da.alias) {
			values = append(values, da.canonical)
			consumed = strings.ReplaceAll(consumed, da.alias, " ")
		}
	}
	return values
}

func extractStudentIDs(text string) []string {
	return studentIDRe.FindAllString(text, -1)
}

// containsWord reports whether text contains phrase on word boundaries.
func containsWord(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
