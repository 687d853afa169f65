package api

// setupPage is the static onboarding page served at GET /setup
const setupPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>banwatch setup</title>
  <style>
    body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
    code { background: #eee; padding: 0.1rem 0.3rem; border-radius: 3px; }
  </style>
</head>
<body>
  <h1>banwatch</h1>
  <p>A Discord bot that checks Free Fire player ban status.</p>

  <h2>Commands</h2>
  <ul>
    <li><code>!ID &lt;player_id&gt;</code> — check ban status</li>
    <li><code>!lang en|fr</code> — set your language</li>
    <li><code>!guilds</code> — show server count</li>
    <li><code>!botinfo</code> — show bot info</li>
    <li><code>!ping</code> — liveness check</li>
    <li><code>!apistatus</code> — endpoint reachability</li>
  </ul>

  <h2>Admin commands</h2>
  <ul>
    <li><code>!setchannel</code> — restrict the bot to the current channel</li>
    <li><code>!removechannel</code> — lift the restriction</li>
    <li><code>!helpchannel</code> — show the current restriction</li>
  </ul>

  <h2>Setup</h2>
  <ol>
    <li>Set <code>DISCORD_BOT_TOKEN</code> in the environment.</li>
    <li>Invite the bot with message-content and guild intents.</li>
    <li>Optionally restrict it with <code>!setchannel</code>.</li>
  </ol>
</body>
</html>
`
