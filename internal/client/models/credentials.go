package models

import (
	"regexp"

	z "github.com/Oudwins/zog"
)

var onetimePasswordPattern = regexp.MustCompile(`^[0-9]{6}$`)

var (
	PasswordSchema = z.String().Required(z.Message(msgRequired)).
			Min(6, z.Message("Passwort muss mindestens 6 Zeichen lang sein.")).
			Max(20, z.Message("Passwort darf maximal 20 Zeichen lang sein."))

	OnetimePasswordSchema = z.String().Trim().Required(z.Message(msgRequired)).
				Match(onetimePasswordPattern, z.Message("Der Code besteht aus genau 6 Ziffern."))
)
