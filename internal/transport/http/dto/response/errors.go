package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status: "error",
		Error:  "invalid_request_format",
	}

	ErrValidationFailed = ErrorResponse{
		Status: "error",
		Error:  "validation_failed",
	}

	ErrNewsNotFound = ErrorResponse{
		Status: "error",
		Error:  "news_not_found",
	}

	ErrReactionConflict = ErrorResponse{
		Status: "error",
		Error:  "reaction_update_in_flight",
	}

	ErrContactForwardFailed = ErrorResponse{
		Status: "error",
		Error:  "contact_forward_failed",
	}
)
