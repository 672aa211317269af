package detector

import "regexp"

// DefaultRules returns the detection rule table. The table is built once at
// startup and treated as read-only afterwards.
//
// Patterns are written in lowercase because matching runs over the
// lowercased document text. Glycemia value patterns accept both the decimal
// point and the decimal comma, since Serbian clinical documents use the
// comma ("0,7 mmol/L").
func DefaultRules() []Rule {
	return []Rule{
		blindPatientInstructionRule(),
		hypoglycemiaGoodPracticeRule(),
		missingCareGoodPracticeRule(),
		caregiverSocialStatusRule(),
		dischargeWithCriticalGlycemiaRule(),
	}
}

// blindPatientInstructionRule flags instructions that require eyesight when
// the diagnosis implies severe visual impairment or blindness.
func blindPatientInstructionRule() Rule {
	return Rule{
		Base: compile(
			`retinopat`,
			`slep`,
			`vid.*ostecen`,
			`h36\.0`,
			`dijabeti.*retinopat`,
		),
		Conflict: ConflictGroup{
			Kind: ConflictInstruction,
			Patterns: compile(
				`upis`,
				`pis(ati|uje|e|i)`,
				`[cč]ita`,
				`bele[zž]i`,
				`evidentira`,
				`meri(ti)?.*glikemij`,
				`javi(ti)?.*lekar`,
			),
		},
		Finding: Anomaly{
			Type:     AnomalyTypeImpossibleInstruction,
			Severity: SeverityCritical,
			Title:    "Nemoguće uputstvo - zahteva vid kod slepog pacijenta",
			Description: "Dokumentacija sadrži uputstvo koje zahteva vid (čitanje/pisanje vrednosti), " +
				"ali pacijent ima dijagnostifikovano teško oštećenje vida ili slepoću (retinopatija).",
			Evidence: []string{
				"Dijagnoza: H36.0 (Retinopathia diabetica) ili ekvivalent",
				"Uputstvo zahteva vizuelnu aktivnost (čitanje, pisanje, beleženje)",
			},
			Recommendation: "Obezbediti asistenciju treće osobe ili govorni glukometar sa audio povratnom informacijom. " +
				"Alternativno: CGM (kontinuirani monitoring glukoze) sa alarmima.",
			ProtocolReference: ref("Vodič za dijabetes Batuta 2023, Sekcija 4.2 - Prilagođavanje terapije"),
		},
	}
}

// hypoglycemiaGoodPracticeRule flags conclusions that rate a documented
// severe hypoglycemia as proper care.
func hypoglycemiaGoodPracticeRule() Rule {
	return Rule{
		Base: compile(
			`glikemij.*[0-2][.,][0-9]`,
			`glukoz.*[0-2][.,][0-9]`,
			`[0-2][.,][0-9]\s*mmol`,
			`hipoglikemij`,
		),
		Conflict: ConflictGroup{
			Kind: ConflictConclusion,
			Patterns: compile(
				`dobr.*praks`,
				`u skladu`,
				`pravilno`,
				`adekvatn`,
				`bez propust`,
			),
		},
		Finding: Anomaly{
			Type:     AnomalyTypeLogicalInconsistency,
			Severity: SeverityCritical,
			Title:    "Logička nekonzistentnost - opasna hipoglikemija opisana kao 'dobra praksa'",
			Description: "Dokumentacija navodi kritično nisku glikemiju (< 2.2 mmol/L je ozbiljna hipoglikemija), " +
				"ali zaključak tvrdi da je postupanje bilo u skladu sa dobrom praksom.",
			Evidence: []string{
				"Glikemija ispod kritičnog praga (< 2.2 mmol/L)",
				"Zaključak pozitivno ocenjuje postupanje",
			},
			Recommendation: "Revidirati zaključak. Prema Vodiču Batuta, glikemija < 2.2 mmol/L zahteva " +
				"hitnu intervenciju. Ako je pacijent na dugom insulinu, neophodna je hospitalizacija.",
			ProtocolReference: ref("Vodič Batuta za prehospitalna urgentna stanja, Hipoglikemija"),
		},
	}
}

// missingCareGoodPracticeRule flags conclusions that rate care as proper
// while the document states care was not provided.
func missingCareGoodPracticeRule() Rule {
	return Rule{
		Base: compile(
			`nega.*nije.*obezbe[dđ]`,
			`nije.*obezbe[dđ].*nega`,
			`bez.*nege`,
			`nega.*nedostup`,
		),
		Conflict: ConflictGroup{
			Kind: ConflictConclusion,
			Patterns: compile(
				`dobr.*praks`,
				`u skladu`,
				`pravilno`,
				`adekvatn`,
			),
		},
		Finding: Anomaly{
			Type:     AnomalyTypeLogicalInconsistency,
			Severity: SeverityCritical,
			Title:    "Kontradikcija - 'nega nije obezbeđena' + 'dobra praksa'",
			Description: "Dokumentacija eksplicitno navodi da nega nije obezbeđena, " +
				"ali zaključak ocenjuje postupanje kao ispravno.",
			Evidence: []string{
				"Izjava: 'nega nije obezbeđena' (ili ekvivalent)",
				"Zaključak: pozitivna ocena postupanja",
			},
			Recommendation: "Uskladiti zaključak sa činjeničnim stanjem. Ako nega zaista nije bila " +
				"obezbeđena, to ne može biti 'dobra praksa' prema bilo kom standardu.",
		},
	}
}

// caregiverSocialStatusRule flags discharge plans that rely on a caregiver
// while the social record says the patient lives alone.
func caregiverSocialStatusRule() Rule {
	return Rule{
		Base: compile(
			`sestra.*vodi.*ra[cč]un`,
			`[cč]lan.*porodic.*brin`,
			`srodnik.*obezbe[dđ]`,
			`suprug.*poma[zž]`,
		),
		Conflict: ConflictGroup{
			Kind: ConflictStatement,
			Patterns: compile(
				`[zž]ivi\s+sam`,
				`nema.*srodnik`,
				`usamljen`,
				`bez.*porodic`,
				`samo.*[zž]ivi`,
			),
		},
		Finding: Anomaly{
			Type:     AnomalyTypeDataConflict,
			Severity: SeverityWarning,
			Title:    "Konflikt podataka - navedena nega vs. socijalni status",
			Description: "Medicinska dokumentacija navodi da će se član porodice/srodnik brinuti o pacijentu, " +
				"ali socijalni podaci ukazuju da pacijent živi sam ili nema dostupne srodnike.",
			Evidence: []string{
				"Otpusna lista/plan: srodnik će se brinuti",
				"Socijalni karton: živi sam/nema srodnika u mestu",
			},
			Recommendation: "Verifikovati stvarno stanje pre otpusta. Ako pacijent zaista živi sam, " +
				"organizovati kućnu negu ili razmotriti produženi boravak.",
		},
	}
}

// dischargeWithCriticalGlycemiaRule flags discharges with a glycemia value
// below the protocol threshold.
func dischargeWithCriticalGlycemiaRule() Rule {
	return Rule{
		Base: compile(
			`otpu[sš]t.*sa.*gluk`,
			`otpu[sš]t.*sa.*glikemij`,
		),
		Conflict: ConflictGroup{
			Kind: ConflictValue,
			Patterns: compile(
				`[0-3][.,][0-9]\s*mmol`,
				`glu.*[0-3][.,][0-9]`,
			),
		},
		Finding: Anomaly{
			Type:     AnomalyTypeProtocolViolation,
			Severity: SeverityCritical,
			Title:    "Kršenje protokola - otpust sa kritičnom glikemijom",
			Description: "Pacijent je otpušten sa glikemijom koja je ispod bezbednog praga. " +
				"Prema protokolu, glikemija mora biti stabilizovana pre otpusta.",
			Evidence: []string{
				"Vrednost glikemije pri otpustu ispod 4.0 mmol/L",
			},
			Recommendation: "Pacijent sa glikemijom < 4.0 mmol/L ne bi trebalo da bude otpušten " +
				"dok se vrednosti ne stabilizuju iznad 5.0 mmol/L tokom najmanje 2 sata.",
			ProtocolReference: ref("ADA Standards of Care 2024, Sekcija 6 - Hospitalizovani pacijenti"),
		},
	}
}

func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

func ref(s string) *string {
	return &s
}
