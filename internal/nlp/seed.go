package nlp

// SeedSamples returns the built-in training corpus. It backs the
// classifier at first boot, before any samples have been persisted.
func SeedSamples() []Sample {
	return []Sample{
		{Text: "How do I apply for admission to AAU?", Intent: IntentAdmissionInquiry},
		{Text: "What are the admission requirements for computer science?", Intent: IntentAdmissionInquiry},
		{Text: "When is the application deadline for the engineering department?", Intent: IntentAdmissionInquiry},
		{Text: "I want to join the medicine program, what do I need?", Intent: IntentAdmissionInquiry},
		{Text: "Can I apply for a masters degree in economics?", Intent: IntentAdmissionInquiry},
		{Text: "What is the entrance exam cutoff for law school admission?", Intent: IntentAdmissionInquiry},

		{Text: "How do I register for courses this semester?", Intent: IntentRegistrationHelp},
		{Text: "I cannot complete my course registration for second semester 2024", Intent: IntentRegistrationHelp},
		{Text: "When does registration open for first semester?", Intent: IntentRegistrationHelp},
		{Text: "Help me add a course to my registration", Intent: IntentRegistrationHelp},
		{Text: "I missed the registration deadline, what should I do?", Intent: IntentRegistrationHelp},
		{Text: "How can I drop a class after registering?", Intent: IntentRegistrationHelp},

		{Text: "How much is the tuition fee this year?", Intent: IntentFeePayment},
		{Text: "Where can I pay my 5000 birr registration fee?", Intent: IntentFeePayment},
		{Text: "What payment methods are accepted for tuition?", Intent: IntentFeePayment},
		{Text: "I paid my fees but it is not showing in the system", Intent: IntentFeePayment},
		{Text: "Is there a deadline for fee payment?", Intent: IntentFeePayment},
		{Text: "Can I pay my tuition in installments?", Intent: IntentFeePayment},

		{Text: "How do I request an official transcript?", Intent: IntentTranscriptRequest},
		{Text: "I need a copy of my transcript for a job application", Intent: IntentTranscriptRequest},
		{Text: "How long does it take to get a transcript?", Intent: IntentTranscriptRequest},
		{Text: "Can my transcript be sent directly to another university?", Intent: IntentTranscriptRequest},
		{Text: "What is the fee for an official transcript?", Intent: IntentTranscriptRequest},

		{Text: "Where can I see my grades for this semester?", Intent: IntentGradeInquiry},
		{Text: "My grade for first semester 2024 is missing", Intent: IntentGradeInquiry},
		{Text: "How do I appeal a grade?", Intent: IntentGradeInquiry},
		{Text: "When will second semester grades be released?", Intent: IntentGradeInquiry},
		{Text: "What is my GPA for the 2023 academic year?", Intent: IntentGradeInquiry},

		{Text: "What courses does the computer science department offer?", Intent: IntentCourseInformation},
		{Text: "Tell me about the electives in the business department", Intent: IntentCourseInformation},
		{Text: "What are the prerequisites for advanced calculus?", Intent: IntentCourseInformation},
		{Text: "How many credit hours is the software engineering course?", Intent: IntentCourseInformation},
		{Text: "Which department offers the data structures course?", Intent: IntentCourseInformation},

		{Text: "When does the first semester start?", Intent: IntentScheduleInquiry},
		{Text: "What is the exam schedule for second semester 2024?", Intent: IntentScheduleInquiry},
		{Text: "When is the final exam week?", Intent: IntentScheduleInquiry},
		{Text: "What is the academic calendar for this year?", Intent: IntentScheduleInquiry},
		{Text: "When do classes resume after the break?", Intent: IntentScheduleInquiry},

		{Text: "How do I get a degree certificate?", Intent: IntentDocumentRequest},
		{Text: "I need an enrollment verification letter", Intent: IntentDocumentRequest},
		{Text: "Where do I request a recommendation letter?", Intent: IntentDocumentRequest},
		{Text: "How can I get a copy of my diploma?", Intent: IntentDocumentRequest},
		{Text: "I lost my student copy, can I get a replacement?", Intent: IntentDocumentRequest},

		{Text: "Where is the main campus located?", Intent: IntentGeneralInfo},
		{Text: "What are the library opening hours?", Intent: IntentGeneralInfo},
		{Text: "Tell me about Addis Ababa University", Intent: IntentGeneralInfo},
		{Text: "How do I contact the registrar office?", Intent: IntentGeneralInfo},
		{Text: "Does the university offer dormitory housing?", Intent: IntentGeneralInfo},

		{Text: "I cannot log into the student portal", Intent: IntentTechnicalSupport},
		{Text: "The registration system keeps showing an error", Intent: IntentTechnicalSupport},
		{Text: "How do I reset my portal password?", Intent: IntentTechnicalSupport},
		{Text: "My student email is not working", Intent: IntentTechnicalSupport},
		{Text: "The website is down, who do I contact?", Intent: IntentTechnicalSupport},
	}
}
