package engagement

// Operation names, as recorded in outcomes, rejections and the audit log.
const (
	OpSelectCompany               = "select_company"
	OpRequestOnsiteFee            = "request_onsite_fee"
	OpClaimOnsiteFeePaid          = "claim_onsite_fee_paid"
	OpConfirmOnsiteFeeReceived    = "confirm_onsite_fee_received"
	OpDeclineOnsiteFee            = "decline_onsite_fee"
	OpSubmitQuote                 = "submit_quote"
	OpAcceptQuote                 = "accept_quote"
	OpDeclineQuote                = "decline_quote"
	OpConfirmDepositReceived      = "confirm_deposit_received"
	OpRequestIntermediatePayment  = "request_intermediate_payment"
	OpConfirmIntermediateReceived = "confirm_intermediate_received"
	OpMarkWorkCompleted           = "mark_work_completed"
	OpApproveWork                 = "approve_work"
	OpReportIssue                 = "report_issue"
	OpMarkRectified               = "mark_rectified"
)
