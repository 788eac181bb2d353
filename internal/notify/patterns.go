package notify

// SMS pattern identifiers. The gateway resolves each to a pre-approved
// message template; params fill the template placeholders in order.
const (
	PatternInquiryRegistered   = "inquiry_registered"    // params: customer name, product name
	PatternCreditCheckFailed   = "credit_check_failed"   // params: customer name
	PatternExpertAssigned      = "expert_assigned"       // params: customer name, customer mobile, product name
	PatternUserConfirmed       = "user_confirmed"        // params: customer name, product name
	PatternMoreDocsRequested   = "more_docs_requested"   // params: customer name
	PatternMeetingScheduled    = "meeting_scheduled"     // params: customer name, product name
	PatternDownPaymentRequest  = "down_payment_request"  // params: customer name, amount
	PatternDownPaymentReceived = "down_payment_received" // params: customer name
	PatternInquiryApproved     = "inquiry_approved"      // params: customer name, product name
	PatternInquiryRejected     = "inquiry_rejected"      // params: customer name, reason
)
