package service

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type ConfirmCodeInput struct {
	Email string
	Code  string
}

type UserSummary struct {
	ID     string
	Email  string
	Name   string
	Role   string
	Avatar *string
}

// ChallengeResult reports the outcome of issuing a two-steps
// challenge. The code is persisted before the result is returned;
// email dispatch may have failed without voiding the challenge.
type ChallengeResult struct {
	EmailDispatched bool
}

type LoginResult struct {
	User         *UserSummary
	Token        string
	TwoStepsAuth bool
	Challenge    *ChallengeResult
}

type ConfirmCodeResult struct {
	User  *UserSummary
	Token string
}

type RegisterResult struct {
	User  *UserSummary
	Token string
}

type ProfileUpdateInput struct {
	Name   *string
	Email  *string
	Resume *string
	Skills []string
	Stack  []string
}
