package services

// Note: AuthService implementation is in auth_service.go
// Note: UserService implementation is in user_service.go

// Mailer defines the outbound notification contract. All sends are
// asynchronous and non-blocking; delivery failures are logged by the
// implementation and never surface to the caller.
type Mailer interface {
	SendActivationEmail(email, orgName, activationToken string)
	SendCredentialsEmail(email, orgName, temporaryPassword string)
	SendPasswordResetEmail(email, resetToken string)
}
