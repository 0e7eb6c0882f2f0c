package regscan

import "regexp"

type category struct {
	name     string
	keywords []string
}

// categories are scanned in this order; keywords keep their listed casing in
// results.
var categories = []category{
	{
		name: "data_privacy",
		keywords: []string{
			"personal data",
			"personal information",
			"GDPR",
			"CCPA",
			"data protection",
			"data subject",
			"data breach",
			"data processing",
			"privacy policy",
		},
	},
	{
		name: "financial",
		keywords: []string{
			"securities",
			"Securities and Exchange Commission",
			"anti-money laundering",
			"know your customer",
			"Dodd-Frank",
			"Sarbanes-Oxley",
			"FINRA",
			"Basel III",
			"investment adviser",
		},
	},
	{
		name: "healthcare",
		keywords: []string{
			"HIPAA",
			"protected health information",
			"health information",
			"medical records",
			"HITECH",
			"FDA",
			"clinical trial",
		},
	},
	{
		name: "employment",
		keywords: []string{
			"employment",
			"employee",
			"non-compete",
			"non-solicitation",
			"FLSA",
			"ERISA",
			"wrongful termination",
			"discrimination",
			"severance",
		},
	},
	{
		name: "intellectual_property",
		keywords: []string{
			"intellectual property",
			"patent",
			"trademark",
			"copyright",
			"trade secret",
			"license",
			"infringement",
		},
	},
}

// Each pattern captures the jurisdiction name in its first group.
var jurisdictionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Delaware|New York|California|Texas|Nevada|Illinois|Massachusetts|Florida)\b`),
	regexp.MustCompile(`(?i)\b(European Union|EU|EEA|United Kingdom|UK|England and Wales|Canada|Singapore|Hong Kong|Switzerland)\b`),
	regexp.MustCompile(`(?i)\b(United States|U\.S\.)`),
}
