package articles

import "newsinsight/internal/models"

// Demo corpus: two real-world style articles covering the same story from
// different outlets, so the comparison flow has something to chew on without
// a NewsAPI key.
var corpus = []models.Article{
	{
		ID:    1,
		Title: "What to know about how the SAVE America Act could change voting",
		Content: `Ahead of the midterm elections, Republicans are again pushing for legislation that requires documentary proof of U.S. citizenship to vote.

The Trump-backed Safeguard American Voter Eligibility Act, or the SAVE America Act, seeks to address the president's longstanding demands to "fix" U.S. elections that he says are "rigged" and "stolen," despite no evidence of widespread voter fraud.

The SAVE America Act is an expanded version of legislation that the House passed twice in as many years. It failed to clear the Senate in both cases. Every version of the SAVE Act has had a common throughline: requiring Americans to provide proof of citizenship when registering to vote in federal elections. For most people, this would likely mean a passport or birth certificate.

While the bill lists other eligible documents that can prove citizenship, they may not meet the measure's requirements, said Sean Morales-Doyle, director of the voting rights and elections program at the Brennan Center for Justice. One of those documents is an ID that is compliant with the provisions of the REAL ID Act of 2005 and "indicates the applicant is a citizen of the United States." REAL IDs are available to both citizens and noncitizens, Morales-Doyle said. No one state's REAL ID explicitly marks citizenship status, nor do most state-issued driver's licenses.

The act also requires a government-issued photo ID to vote in person, and a copy of an eligible photo ID both when requesting and submitting an absentee ballot. The bill would also add criminal penalties for any election official who registers an applicant who fails to provide documentary proof of citizenship. Those penalties apply even if an individual is a U.S. citizen, said Rachel Orey, director of the Bipartisan Policy Center's Elections Project.

This is one of the "most concerning gray areas" in the SAVE America Act because it gives "vague discretion" to an election official who could face a criminal penalty, they said. Orey said all of the bills under consideration are "unfunded mandates" that need time and resources to implement. "We don't recommend that states or the federal government implement election administration policy changes in a federal election year, let alone a policy change that would be as significant as this," they said.`,
		URL:         "https://www.pbs.org/newshour/politics/how-the-save-america-act-would-make-major-changes-to-voting",
		Source:      "NPR Politics",
		PublishedAt: "2026-02-18T12:30:00Z",
	},
	{
		ID:    2,
		Title: "House passes SAVE Act to require voters to show ID",
		Content: `The House of Representatives narrowly passed the SAVE America Act on Wednesday, but it faces a tough sell in the Senate.

The House approved the measure on Wednesday by a vote of 218-213, with one Democrat voting in favor of the proposed law that would require voters to provide a birth certificate or passport to prove their citizenship status when registering to vote and produce a valid photo ID to vote.

"It's just common sense. Americans need an ID to drive, to open a bank account, to buy cold medicine [and] to file for government assistance," House Speaker Mike Johnson, R-La., told media. "So, why would voting be any different than that?"

Democrats oppose the measure, which Senate Minority Leader Chuck Schumer, D-N.Y., called "Jim Crow 2.0." House Minority Leader Hakeem Jeffries, D-N.Y., called the proposed voting law a "desperate effort by Republicans to distract" without saying from what. "The so-called SAVE Act is not about voter identification," Jeffries continued. "It is about voter suppression, and they have zero credibility on this issue." Rep. Henry Cuellar, D-Texas, was the lone Democrat to vote in favor of the measure, which now goes to the Senate for consideration.

Although Senate Republicans have a simple majority in the upper chamber, they likely lack the 60 votes needed to overcome the Senate's filibuster rule. Senate Majority Leader John Thune, R-S.D., on Tuesday said he supports the proposed act but does not have the votes needed to change the filibuster rule to pass it with a simple majority. Some Republicans have suggested requiring a standing filibuster, which would require those opposing proposed legislation to physically engage in a non-stop filibuster instead of just announcing their intent to do so.`,
		URL:         "https://www.breitbart.com/news/house-passes-save-act-to-require-voters-to-show-id/",
		Source:      "Breitbart News",
		PublishedAt: "2026-02-18T12:45:00Z",
	},
}

// All returns every article in the demo corpus.
func All() []models.Article {
	return corpus
}

// ByID finds one corpus article, reporting whether it exists.
func ByID(id int) (models.Article, bool) {
	for _, article := range corpus {
		if article.ID == id {
			return article, true
		}
	}
	return models.Article{}, false
}

// Reference returns a corpus article other than id for comparisons.
func Reference(id int) (models.Article, bool) {
	for _, article := range corpus {
		if article.ID != id {
			return article, true
		}
	}
	return models.Article{}, false
}
