package handlers

import "github.com/gin-gonic/gin"

const playgroundHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width,initial-scale=1" />
    <title>inkpost GraphQL Playground</title>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css" />
    <style>
      body { margin: 0; background: #172a3a; }
      #root { height: 100vh; }
    </style>
  </head>
  <body>
    <div id="root"></div>
    <script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
    <script>
      window.addEventListener('load', function () {
        GraphQLPlayground.init(document.getElementById('root'), {
          endpoint: '/graphql'
        });
      });
    </script>
  </body>
</html>`

// Playground serves the interactive explorer. Not part of the programmatic
// API surface.
func Playground(ctx *gin.Context) {
	ctx.Data(200, "text/html; charset=utf-8", []byte(playgroundHTML))
}
