// Package nlp implements the language pipeline for the helpdesk chatbot:
// text normalization, intent classification, slot extraction, and the
// dialogue manager that merges turns into session context.
package nlp

// Intent names form a fixed taxonomy. The classifier only ever predicts
// one of these, and /train rejects samples labeled outside it.
const (
	IntentAdmissionInquiry  = "admission_inquiry"
	IntentRegistrationHelp  = "registration_help"
	IntentFeePayment        = "fee_payment"
	IntentTranscriptRequest = "transcript_request"
	IntentGradeInquiry      = "grade_inquiry"
	IntentCourseInformation = "course_information"
	IntentScheduleInquiry   = "schedule_inquiry"
	IntentDocumentRequest   = "document_request"
	IntentGeneralInfo       = "general_info"
	IntentTechnicalSupport  = "technical_support"
)

// Slot names used by the extractor registry.
const (
	SlotDepartment   = "department"
	SlotSemester     = "semester"
	SlotYear         = "year"
	SlotFeeAmount    = "fee_amount"
	SlotDocumentType = "document_type"
	SlotStudentID    = "student_id"
)

// requiredSlots maps each intent to the slots a complete answer needs.
var requiredSlots = map[string][]string{
	IntentAdmissionInquiry:  {SlotDepartment},
	IntentRegistrationHelp:  {SlotSemester, SlotYear},
	IntentFeePayment:        {SlotFeeAmount},
	IntentTranscriptRequest: {SlotDocumentType},
	IntentGradeInquiry:      {SlotSemester, SlotYear},
	IntentCourseInformation: {SlotDepartment},
	IntentScheduleInquiry:   {SlotSemester, SlotYear},
	IntentDocumentRequest:   {SlotDocumentType},
	IntentGeneralInfo:       {},
	IntentTechnicalSupport:  {},
}

// Intents returns the full taxonomy in a stable order.
func Intents() []string {
	return []string{
		IntentAdmissionInquiry,
		IntentRegistrationHelp,
		IntentFeePayment,
		IntentTranscriptRequest,
		IntentGradeInquiry,
		IntentCourseInformation,
		IntentScheduleInquiry,
		IntentDocumentRequest,
		IntentGeneralInfo,
		IntentTechnicalSupport,
	}
}

// IsValidIntent reports whether name is part of the taxonomy.
func IsValidIntent(name string) bool {
	_, ok := requiredSlots[name]
	return ok
}

// RequiredSlots returns the required slot names for an intent.
// Unknown intents require nothing.
func RequiredSlots(intent string) []string {
	slots, ok := requiredSlots[intent]
	if !ok {
		return nil
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// MissingSlots returns the required slots of intent that have no
// non-empty value in params, in the required order.
func MissingSlots(intent string, params map[string][]string) []string {
	var missing []string
	for _, slot := range RequiredSlots(intent) {
		if len(params[slot]) == 0 {
			missing = append(missing, slot)
		}
	}
	return missing
}
