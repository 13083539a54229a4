package hygraph

// GraphQL documents for the content store. Field sets match what the
// pages render; games inside a console always arrive ordered by title.

const queryGameConsole = `
query getGameConsole($consoleSlug: String!) {
	gameConsole(where: { slug: $consoleSlug }) {
		id
		slug
		name
		games(orderBy: title_ASC) {
			id
			title
			description
			rating
			release
			upc
			developer
			publisher
			genre
			slug
		}
	}
}`

const queryGameBySlug = `
query getGameBySlug($slug: String!) {
	game(where: { slug: $slug }) {
		id
		title
		description
		rating
		release
		upc
		developer
		publisher
		genre
		slug
		console {
			name
		}
		images {
			id
			url
		}
	}
}`

const mutationCreateGame = `
mutation ($title: String!, $description: String!, $rating: EsrbRatings!, $release: Date!, $upc: String!, $developer: String!, $publisher: String!, $genre: Genre!, $consoleSlug: String!, $slug: String!) {
	createGame(
		data: {
			title: $title
			description: $description
			rating: $rating
			release: $release
			upc: $upc
			developer: $developer
			publisher: $publisher
			genre: $genre
			console: { connect: { slug: $consoleSlug } }
			slug: $slug
		}
	) {
		id
		title
		description
		rating
		release
		upc
		developer
		publisher
		genre
		slug
	}
}`

const mutationPublishGame = `
mutation ($id: ID!) {
	publishGame(where: { id: $id }, to: PUBLISHED) {
		id
	}
}`
