package rasterize

const helperSelector = "#h2s-raster-helper"

const blankPageScript = `() => {
  document.documentElement.style.background = "transparent";
  document.body.style.background = "transparent";
  document.body.innerHTML = "";
}`

const createCSSHelperScript = `(o) => {
  const el = document.createElement("div");
  el.id = "h2s-raster-helper";
  el.style.position = "fixed";
  el.style.left = o.left + "px";
  el.style.top = o.top + "px";
  el.style.width = o.width + "px";
  el.style.height = o.height + "px";
  el.style.backgroundImage = o.backgroundImage || "none";
  el.style.backgroundRepeat = o.backgroundRepeat || "no-repeat";
  el.style.backgroundSize = o.backgroundSize || "auto";
  el.style.backgroundPosition = o.backgroundPosition || "0% 0%";
  el.style.backgroundColor = o.backgroundColor || "transparent";
  document.body.appendChild(el);
}`

const createSVGHelperScript = `(o) => {
  const el = document.createElement("div");
  el.id = "h2s-raster-helper";
  el.style.position = "fixed";
  el.style.left = o.left + "px";
  el.style.top = o.top + "px";
  el.style.width = o.width + "px";
  el.style.height = o.height + "px";
  el.innerHTML = o.markup;
  document.body.appendChild(el);
}`

const createImageHelperScript = `(o) => new Promise((resolve, reject) => {
  const el = document.createElement("div");
  el.id = "h2s-raster-helper";
  el.style.position = "fixed";
  el.style.left = o.left + "px";
  el.style.top = o.top + "px";
  el.style.width = o.width + "px";
  el.style.height = o.height + "px";
  el.style.overflow = "hidden";
  if (o.borderRadius) el.style.borderRadius = o.borderRadius;
  const img = document.createElement("img");
  img.onload = () => resolve(null);
  img.onerror = () => reject(new Error("image failed to load: " + o.src));
  img.src = o.src;
  img.style.width = "100%";
  img.style.height = "100%";
  img.style.objectFit = o.objectFit || "fill";
  img.style.objectPosition = o.objectPosition || "50% 50%";
  el.appendChild(img);
  document.body.appendChild(el);
})`

const removeHelperScript = `() => {
  const el = document.getElementById("h2s-raster-helper");
  if (el) el.remove();
}`
