package analysis

// Examples returns the fixed demo document set: three documents that each
// trigger one anomaly type and one clean document. The contents are part of
// the service contract and are used for UI demos and smoke tests, so they
// must stay byte-stable.
func Examples() ExamplesResponse {
	return ExamplesResponse{
		Examples: []Example{
			{
				ID:          "blind_patient_instructions",
				Title:       "Nemoguće uputstvo - slepi pacijent",
				Description: "Pacijent sa dijabetičkom retinopatijom oba oka dobija uputstvo da čita i zapisuje vrednosti glikemije",
				DocumentText: `
OTPUSNA LISTA
Dijagnoza: E11.3 (Diabetes mellitus tip 2 sa oftalmološkim komplikacijama)
           H36.0 (Retinopathia diabetica, OU - oba oka)

Terapija pri otpustu:
- Insulin glargin 20 j SC uveče
- Metformin 1000mg 2x1

Uputstvo za pacijenta:
1. Meriti glikemiju 4x dnevno (ujutru natašte, pre ručka, pre večere, pred spavanje)
2. Da upiše sve glikemije manje od 3,5 mmol/L
3. Da upiše sve glikemije veće od 13,0 mmol/L
4. Javiti se lekaru ako glikemija padne ispod 3,5 ili poraste iznad 13,0

Kontrola za 30 dana.
                `,
				ExpectedAnomaly: expected("IMPOSSIBLE_INSTRUCTION"),
			},
			{
				ID:          "critical_hypoglycemia",
				Title:       "Kritična hipoglikemija - logička nekonzistentnost",
				Description: "Izveštaj koji ocenjuje kao 'dobru praksu' postupanje gde je pacijent imao kritičnu hipoglikemiju",
				DocumentText: `
IZVEŠTAJ SAVETNIKA ZA ZAŠTITU PRAVA PACIJENATA

Predmet: Pritužba na postupanje zdravstvene ustanove

Činjenično stanje:
- Pacijent dovezen sa glikemijom 0,7 mmol/L
- Lekar izjavio da "nega nije obezbeđena u kućnim uslovima"
- Pacijent otpušten istog dana
- Prepisan dugodjelujući insulin (glargin)

Ocena savetnika:
Na osnovu uvida u medicinsku dokumentaciju, utvrđeno je da je postupanje
zdravstvene ustanove bilo u skladu sa dobrom kliničkom praksom.

Pritužba se odbija kao neosnovana.
                `,
				ExpectedAnomaly: expected("LOGICAL_INCONSISTENCY"),
			},
			{
				ID:          "social_conflict",
				Title:       "Konflikt podataka - sestra vs. živi sam",
				Description: "Otpusna lista navodi da će se sestra brinuti, ali pacijent živi sam",
				DocumentText: `
OTPUSNA LISTA

Socijalna anamneza: Pacijent živi sam u stanu, nema srodnika u gradu.
Supruga preminula pre 3 godine. Deca žive u inostranstvu.

Plan nege nakon otpusta:
- Sestra će voditi računa o redovnom uzimanju terapije
- Kontrola kod izabranog lekara za 7 dana
- Kućna nega nije potrebna

Napomena: Pacijent je upoznat sa terapijom i otpušta se na kućno lečenje.
                `,
				ExpectedAnomaly: expected("DATA_CONFLICT"),
			},
			{
				ID:          "normal_document",
				Title:       "Normalan dokument - bez anomalija",
				Description: "Primer ispravne medicinske dokumentacije",
				DocumentText: `
OTPUSNA LISTA

Dijagnoza: E11.9 (Diabetes mellitus tip 2 bez komplikacija)

Terapija:
- Metformin 500mg 2x1

Preporuke:
- Dijeta sa smanjenim unosom ugljenih hidrata
- Fizička aktivnost 30 min dnevno
- Kontrola HbA1c za 3 meseca

Pacijent je edukovan o znacima hipoglikemije i hiperglikemije.
Porodica je uključena u plan lečenja.
                `,
				ExpectedAnomaly: nil,
			},
		},
	}
}

func expected(s string) *string {
	return &s
}
