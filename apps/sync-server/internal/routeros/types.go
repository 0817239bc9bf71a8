package routeros

// secretPatch は /rest/ppp/secret/{name} へのPATCHボディ
type secretPatch struct {
	Password string `json:"password"`
	Comment  string `json:"comment"`
}

// apiErrorBody はRouterOS REST APIのエラーレスポンス
type apiErrorBody struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}
