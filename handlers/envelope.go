package handlers

// Response is the uniform envelope returned by resource CRUD endpoints.
type Response[T any] struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

func envelope[T any](message string, result T) Response[T] {
	return Response[T]{
		Code:    "200",
		Status:  "Ok",
		Message: message,
		Result:  result,
	}
}

// Request wraps mutating CRUD bodies in a {"parameter": ...} object.
type Request[T any] struct {
	Parameter T `json:"parameter" binding:"required"`
}

// IDParam identifies a record in update/delete request bodies.
type IDParam struct {
	ID uint `json:"id" binding:"required"`
}
