// Package template renders chatbot replies from per-intent catalogs.
// Templates carry {placeholder} markers filled from extracted slot
// values; variants are picked by a seedable random source.
package template

// catalog holds the response variants for one intent. Complete variants
// are used when every required slot is filled, partial variants when
// follow-up questions are still needed.
type catalog struct {
	complete []string
	partial  []string
}

var intentCatalogs = map[string]catalog{
	"admission_inquiry": {
		complete: []string{
			"For {department} admissions at AAU, here's what you need to know:\n\n" +
				"**Requirements:**\n" +
				"- Complete secondary education certificate\n" +
				"- Entrance exam results\n" +
				"- Application form\n\n" +
				"**Application Period:** Usually opens in June-July\n" +
				"**Application Fee:** 200 ETB\n\n" +
				"For specific requirements for {department}, please visit the admissions office or check the AAU website.",
			"Welcome to AAU! For {department} admission information:\n\n" +
				"**Steps to Apply:**\n" +
				"1. Obtain application form from AAU or online\n" +
				"2. Submit required documents\n" +
				"3. Pay application fee\n" +
				"4. Take entrance exam (if required)\n\n" +
				"The {department} program has specific prerequisites. Contact the admissions office for detailed requirements.",
		},
		partial: []string{
			"I can help you with admission information! To provide specific details, I need to know which department or program you're interested in.",
			"AAU offers various programs. Which department are you planning to apply to?",
		},
	},
	"registration_help": {
		complete: []string{
			"**AAU Registration for {semester} {year}**\n\n" +
				"**Registration Steps:**\n" +
				"1. Meet with your academic advisor\n" +
				"2. Select courses based on your curriculum\n" +
				"3. Complete online registration\n" +
				"4. Pay semester fees\n" +
				"5. Confirm registration\n\n" +
				"**Important Dates:**\n" +
				"• Registration typically opens 2 weeks before semester start\n" +
				"• Add/drop period follows registration\n" +
				"• Late registration may incur penalties\n\n" +
				"**Contact:** Registrar's Office for assistance",
		},
		partial: []string{
			"I can help with registration! Which semester and year are you registering for?",
			"To provide specific registration guidance, please let me know the semester and academic year.",
		},
	},
	"fee_payment": {
		complete: []string{
			"**AAU Fee Payment Information - {fee_amount}**\n\n" +
				"**Payment Methods:**\n" +
				"• Bank transfer to AAU account (Commercial Bank of Ethiopia)\n" +
				"• Cash payment at University Finance Office\n" +
				"• TeleBirr service platform (Ethio Telecom)\n" +
				"• Online payment portal (when available)\n\n" +
				"**Required Documents:**\n" +
				"• Student ID card\n" +
				"• Fee notification slip\n" +
				"• Valid identification\n\n" +
				"**Important:** Keep payment receipt safe and check academic calendar for deadlines\n" +
				"**Contact:** Finance Office for specific account details",
		},
		partial: []string{
			"I can help with fee payment information. What's the amount you need to pay or type of fee?",
			"To provide specific payment guidance, please tell me the fee amount or fee category.",
		},
	},
	"transcript_request": {
		complete: []string{
			"**AAU Transcript Request - {document_type}**\n\n" +
				"**Required Documents:**\n" +
				"• Completed transcript request form\n" +
				"• Copy of student ID\n" +
				"• Copy of national ID\n" +
				"• Payment receipt (50 ETB per copy)\n\n" +
				"**Process:**\n" +
				"1. Fill out transcript request form\n" +
				"2. Pay required fee (50 ETB per transcript)\n" +
				"3. Submit documents to Registrar's Office\n" +
				"4. Collect after 3-5 working days\n\n" +
				"**Location:** Registrar's Office, Main Campus\n" +
				"**Contact:** +251-11-123-4567 | registrar@aau.edu.et",
		},
		partial: []string{
			"I can help with document requests. What type of document do you need (transcript, certificate, etc.)?",
			"Which document would you like to request from AAU?",
		},
	},
	"grade_inquiry": {
		complete: []string{
			"**AAU Grade Inquiry - {semester} {year}**\n\n" +
				"**How to Check Grades:**\n" +
				"• Student portal (online access)\n" +
				"• Academic office visit\n" +
				"• Request official grade report\n\n" +
				"**Grade Issues Resolution:**\n" +
				"1. Contact course instructor first\n" +
				"2. Submit grade appeal if necessary\n" +
				"3. Follow up with department head\n\n" +
				"**Grade Release Timeline:**\n" +
				"• Usually 2 weeks after final exams\n" +
				"• Delayed grades: Contact instructor\n\n" +
				"**Contact:** Academic Office +251-11-123-4568",
		},
		partial: []string{
			"I can help with grade inquiries. Which semester and year are you asking about?",
			"To check your grades, please specify the semester and academic year.",
		},
	},
	"course_information": {
		complete: []string{
			"**AAU Course Information - {department}**\n\n" +
				"**Available Resources:**\n" +
				"• Course catalog (online and printed)\n" +
				"• Academic advisor consultation\n" +
				"• Department office visits\n" +
				"• Student handbook\n\n" +
				"**Course Details Include:**\n" +
				"• Prerequisites and corequisites\n" +
				"• Credit hours (ECTS)\n" +
				"• Course descriptions and objectives\n" +
				"• Semester offerings\n\n" +
				"**Contact:** {department} department office for specific course information",
		},
		partial: []string{
			"I can provide course information. Which department or specific course are you interested in?",
			"Which department's courses would you like to know about?",
		},
	},
	"schedule_inquiry": {
		complete: []string{
			"**AAU Schedule Information - {semester} {year}**\n\n" +
				"**Where to Find Schedules:**\n" +
				"• Student portal (online access)\n" +
				"• Department notice boards\n" +
				"• Academic office\n\n" +
				"**Schedule Information Includes:**\n" +
				"• Class times and locations\n" +
				"• Instructor information\n" +
				"• Room assignments\n" +
				"• Exam schedules\n" +
				"• Important academic dates\n\n" +
				"**Updates:** Check regularly for schedule changes\n" +
				"**Contact:** Academic office for schedule assistance",
		},
		partial: []string{
			"I can help with schedule information. Which semester and year are you asking about?",
			"Please specify the semester and academic year for schedule details.",
		},
	},
	"document_request": {
		complete: []string{
			"**AAU Document Request - {document_type}**\n\n" +
				"**Available Documents:**\n" +
				"• Official transcripts\n" +
				"• Degree certificates\n" +
				"• Enrollment verification letters\n" +
				"• Grade reports\n" +
				"• Recommendation letters\n\n" +
				"**General Requirements:**\n" +
				"• Completed request form\n" +
				"• Valid identification\n" +
				"• Payment receipt\n\n" +
				"**Processing Times:**\n" +
				"• Transcripts: 3-5 working days\n" +
				"• Certificates: 5-7 working days\n" +
				"• Verification letters: Same day\n\n" +
				"**Fees:** Vary by document type (50 ETB for transcripts)\n" +
				"**Location:** Registrar's Office, Main Campus",
		},
		partial: []string{
			"I can help with document requests. What type of document do you need?",
			"Which document would you like to request from AAU?",
		},
	},
	"general_info": {
		complete: []string{
			"**Welcome to AAU - Ethiopia's Premier University!**\n\n" +
				"**About AAU:**\n" +
				"• Founded: 1950\n" +
				"• Main Campus: Sidist Kilo, Addis Ababa\n" +
				"• Other Campuses: Sefere Selam, Science Campus (4 Kilo), Bishoftu\n\n" +
				"**I can help you with:**\n" +
				"• Admission inquiries\n" +
				"• Registration assistance\n" +
				"• Fee payment information\n" +
				"• Document requests (transcripts, certificates)\n" +
				"• Grade inquiries and academic records\n" +
				"• Course information and schedules\n\n" +
				"How can I assist you today?",
			"**AAU Student Services**\n\n" +
				"**Phone:** +251-11-123-4567\n" +
				"**Email:** info@aau.edu.et\n" +
				"**Website:** www.aau.edu.et\n\n" +
				"**Key Services:**\n" +
				"• Academic services and registration\n" +
				"• Library services (10 branch libraries)\n" +
				"• Student accommodation\n" +
				"• Research and innovation support\n\n" +
				"What specific information do you need?",
		},
		partial: []string{
			"Hello! I'm here to help with AAU services. What can I assist you with?",
			"Welcome to AAU Helpdesk! How may I help you today?",
		},
	},
	"technical_support": {
		complete: []string{
			"**AAU Technical Support**\n\n" +
				"**Common Technical Issues:**\n" +
				"• Student portal access problems\n" +
				"• Email account setup and issues\n" +
				"• WiFi connectivity on campus\n" +
				"• Online learning platform access\n\n" +
				"**IT Support Services:**\n" +
				"• Account password resets\n" +
				"• Network connectivity troubleshooting\n" +
				"• Digital resource access\n\n" +
				"**Contact Information:**\n" +
				"• IT Support: +251-11-123-4569\n" +
				"• Email: itsupport@aau.edu.et\n" +
				"• Hours: Monday-Friday, 8:00 AM - 5:00 PM\n\n" +
				"**Self-Service:** Many issues can be resolved through the student portal help section",
		},
		partial: []string{
			"I can help with technical issues. What specific problem are you experiencing?",
			"What technical issue can I help you with today?",
		},
	},
}

// followUpQuestions maps slot names to the questions that elicit them.
var followUpQuestions = map[string][]string{
	"department": {
		"Which department or program are you interested in?",
		"Could you specify the department?",
		"What's your field of study or intended major?",
	},
	"semester": {
		"Which semester are you referring to (1st, 2nd, etc.)?",
		"Could you specify the semester?",
		"What semester do you need information about?",
	},
	"year": {
		"Which academic year are you asking about?",
		"Could you specify the year?",
		"What year is this for?",
	},
	"document_type": {
		"What type of document do you need (transcript, certificate, etc.)?",
		"Which document are you requesting?",
		"Could you specify the document type?",
	},
	"fee_amount": {
		"What's the fee amount you need to pay?",
		"Could you specify the amount?",
		"How much do you need to pay?",
	},
	"student_id": {
		"Could you provide your student ID number?",
		"What's your student ID?",
		"Please share your student identification number.",
	},
}

var clarificationResponses = []string{
	"I'm not entirely sure about that. You can find more information on the AAU website (www.aau.edu.et) or check our official Telegram channel @aau_official for the latest updates.",
	"I'm not completely certain about that query. For the most accurate information, please visit www.aau.edu.et or follow our Telegram channel @aau_official.",
	"I'm not sure I have the right information for that. Please check the AAU website at www.aau.edu.et or our Telegram channel @aau_official for official updates.",
	"I don't have enough confidence in my answer for that. For reliable information, visit www.aau.edu.et or check our Telegram @aau_official.",
}

var greetingResponses = []string{
	"Hello! Welcome to AAU Helpdesk. How can I assist you today?",
	"Hi there! I'm here to help with your AAU-related questions. What do you need help with?",
	"Welcome to Addis Ababa University Helpdesk! How may I help you today?",
	"Hello! I'm your AAU virtual assistant. What can I help you with?",
}

var goodbyeResponses = []string{
	"Thank you for using AAU Helpdesk! Have a great day!",
	"Goodbye! Feel free to reach out if you need more help with AAU services.",
	"Take care! Don't hesitate to ask if you have more questions about AAU.",
	"Have a wonderful day! I'm here whenever you need AAU assistance.",
}

var errorResponses = []string{
	"I apologize, but I encountered an issue processing your request. Please try again or contact AAU support directly.",
	"Something went wrong on my end. Could you please rephrase your question?",
	"I'm having trouble understanding that request. Could you try asking in a different way?",
	"Sorry, I couldn't process that properly. Please contact AAU support for immediate assistance.",
}

const fallbackComplete = "I understand your request, but I don't have specific information available right now. Please contact the relevant AAU office for assistance."

const fallbackPartial = "I need a bit more information to help you better."
