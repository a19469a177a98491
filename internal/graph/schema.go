package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the full API surface. Field resolvers either read straight off
// the parent record or perform exactly one store query; none mutate state.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type User {
		username: String!
		email: String!
		createdAt: Time!
		updatedAt: Time!
	}

	type Post {
		id: ID!
		title: String!
		description: String!
		category: Category
	}

	type Category {
		id: ID!
		name: String!
		posts: [Post!]!
	}

	type Access {
		id: ID!
		accessToken: String!
	}

	type Query {
		user(accessToken: String!): User
		userById(id: ID!): User
		posts: [Post!]!
		post(id: ID!): Post
	}

	type Mutation {
		register(username: String!, email: String!, password: String!): User
		login(email: String!, password: String!): Access
		addPost(title: String!, description: String!, category: ID!): Post
		updatePost(id: ID!, title: String, description: String): Post
		deletePost(id: ID!): Post
		addCategory(name: String!): Category
	}
`

func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r)
}

func MustNewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
